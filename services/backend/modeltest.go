package backend

import (
	"context"

	"github.com/sendgrid/rest"

	"github.com/trezcool/examprep/core"
	"github.com/trezcool/examprep/core/modeltest"
)

const modelTestPath = "/api/model-test"

func (c *Client) ListTests(ctx context.Context, token string) ([]modeltest.Test, error) {
	var res struct {
		ModelTests []modeltest.Test `json:"modelTests"`
	}
	if err := c.call(ctx, token, rest.Get, modelTestPath+"/", nil, &res); err != nil {
		return nil, err
	}
	return res.ModelTests, nil
}

func (c *Client) GetTest(ctx context.Context, token string, id core.ID) (modeltest.Test, error) {
	var res struct {
		ModelTest modeltest.Test `json:"modelTest"`
	}
	if err := c.call(ctx, token, rest.Get, idPath(modelTestPath, id), nil, &res); err != nil {
		return modeltest.Test{}, err
	}
	return res.ModelTest, nil
}

func (c *Client) GetQuestions(ctx context.Context, token string, testID core.ID) ([]modeltest.Question, error) {
	var res struct {
		Questions []modeltest.Question `json:"questions"`
	}
	if err := c.call(ctx, token, rest.Get, idPath(modelTestPath, testID, "/questions"), nil, &res); err != nil {
		return nil, err
	}
	return res.Questions, nil
}

func (c *Client) SubmitAttempt(ctx context.Context, token string, sub modeltest.Submission) (core.ID, error) {
	var res struct {
		AttemptID core.ID `json:"attemptId"`
	}
	if err := c.call(ctx, token, rest.Post, modelTestPath+"/attempt", sub, &res); err != nil {
		return "", err
	}
	return res.AttemptID, nil
}

func (c *Client) GetAttempt(ctx context.Context, token string, id core.ID) (modeltest.Attempt, error) {
	var res struct {
		Attempt modeltest.Attempt `json:"attempt"`
	}
	if err := c.call(ctx, token, rest.Get, idPath(modelTestPath+"/attempt", id), nil, &res); err != nil {
		return modeltest.Attempt{}, err
	}
	return res.Attempt, nil
}
