/*
	Project: ExamPrep - backend-for-frontend of the exam preparation app
	Serves the model tests & study plan screens as JSON, fed by the exam-prep backend.
*/
package examprep

/*
TODO: swagger for the /v1 routes
TODO: cache the model tests list per token, it rarely changes during a session
*/
