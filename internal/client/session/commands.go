package session

import (
	"context"
	"fmt"

	"quiz/internal/client/display"
	"quiz/internal/core"
)

// List renders every quiz as "[id]: question"
func (c *Commands) List(ctx context.Context) error {
	quizzes, err := c.repo.FindAll(ctx)
	if err != nil {
		return err
	}

	for _, q := range quizzes {
		c.out.Linef(" [%s]: %s", c.out.Style(q.ID.String(), display.Magenta), q.Question)
	}
	return nil
}

// Show renders the question and answer of one quiz
func (c *Commands) Show(ctx context.Context, raw string) error {
	q, err := c.find(ctx, raw)
	if err != nil {
		return err
	}

	c.out.Linef(" [%s]: %s", c.out.Style(q.ID.String(), display.Magenta), c.render(q))
	return nil
}

// Delete removes a quiz. Deleting an id that does not exist succeeds.
func (c *Commands) Delete(ctx context.Context, raw string) error {
	id, err := core.ValidateID(raw)
	if err != nil {
		return err
	}

	if err := c.repo.Destroy(ctx, id); err != nil {
		return err
	}
	c.log.InfoContext(ctx, "session: quiz deleted", "quiz_id", id)
	return nil
}

// Add asks for a question, then an answer, and stores the new quiz
func (c *Commands) Add(ctx context.Context) error {
	question, err := c.ask.Ask(ctx, " Enter a question: ")
	if err != nil {
		return err
	}
	answer, err := c.ask.Ask(ctx, " Enter the answer: ")
	if err != nil {
		return err
	}

	q, err := c.repo.Create(ctx, question, answer)
	if err != nil {
		return err
	}

	c.log.InfoContext(ctx, "session: quiz created", "quiz_id", q.ID)
	c.out.Linef(" %s: %s", c.out.Style("Added", display.Magenta), c.render(q))
	return nil
}

// Edit asks for a new question and answer, pre-filled with the current
// ones, and saves the quiz
func (c *Commands) Edit(ctx context.Context, raw string) error {
	q, err := c.find(ctx, raw)
	if err != nil {
		return err
	}

	question, err := c.ask.AskWithDefault(ctx, " Enter the question: ", q.Question)
	if err != nil {
		return err
	}
	answer, err := c.ask.AskWithDefault(ctx, " Enter the answer: ", q.Answer)
	if err != nil {
		return err
	}

	edited := *q
	edited.Question = question
	edited.Answer = answer

	saved, err := c.repo.Save(ctx, &edited)
	if err != nil {
		return err
	}

	c.log.InfoContext(ctx, "session: quiz updated", "quiz_id", saved.ID)
	c.out.Linef(" Quiz %s changed to: %s", c.out.Style(saved.ID.String(), display.Magenta), c.render(saved))
	return nil
}

// Test asks the question of one quiz and reports whether the answer is right
func (c *Commands) Test(ctx context.Context, raw string) error {
	q, err := c.find(ctx, raw)
	if err != nil {
		return err
	}

	answer, err := c.ask.Ask(ctx, fmt.Sprintf("%s: ", q.Question))
	if err != nil {
		return err
	}

	if q.Check(answer) {
		c.out.Line("Your answer is correct.")
		c.out.Banner("CORRECT", display.Green)
	} else {
		c.out.Line("Your answer is incorrect.")
		c.out.Banner("INCORRECT", display.Red)
	}
	return nil
}
