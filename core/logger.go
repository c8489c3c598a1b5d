package core

type (
	// Logger is any service that can log & report application events.
	// args may contain errors, extra data (map[string]interface{}) and at most one Viewer.
	Logger interface {
		Debug(msg string, args ...interface{})
		Info(msg string, args ...interface{})
		Warn(msg string, args ...interface{})
		Error(msg string, args ...interface{})
		Fatal(msg string, args ...interface{})
	}

	// Viewer identifies the person browsing the front-end, as named by their token claims.
	Viewer struct {
		ID       string
		Username string
		Email    string
	}
)
