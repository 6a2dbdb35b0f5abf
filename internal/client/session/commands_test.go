package session_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"quiz/internal/client/display"
	"quiz/internal/client/session"
	"quiz/internal/client/terminal"
	"quiz/internal/core"
	"quiz/internal/storage"
)

type fixture struct {
	cmds    *session.Commands
	repo    *storage.Memory
	console *display.Console
	out     *bytes.Buffer
}

func makeCommands(t *testing.T, input string, quizzes ...[2]string) fixture {
	t.Helper()

	out := new(bytes.Buffer)
	console := display.NewConsole(out, false)
	repo := storage.NewMemory()
	for _, q := range quizzes {
		_, err := repo.Create(context.Background(), q[0], q[1])
		require.NoError(t, err)
	}

	term := terminal.NewLine(strings.NewReader(input), out)
	cmds := session.New(session.Config{
		Repository: repo,
		Prompter:   terminal.NewPrompter(term, console, display.Red),
		Console:    console,
	})
	return fixture{cmds: cmds, repo: repo, console: console, out: out}
}

var spain = [2]string{"Capital of Spain", "Madrid"}

func TestCommands_Show(t *testing.T) {
	f := makeCommands(t, "", spain)

	require.NoError(t, f.cmds.Show(context.Background(), "1"))
	require.Equal(t, " [1]: Capital of Spain => Madrid\n", f.out.String())
}

func TestCommands_ShowIsIdempotent(t *testing.T) {
	f := makeCommands(t, "", spain)
	ctx := context.Background()

	require.NoError(t, f.cmds.Show(ctx, "1"))
	first := f.out.String()
	f.out.Reset()
	require.NoError(t, f.cmds.Show(ctx, "1"))

	require.Equal(t, first, f.out.String())
}

func TestCommands_ShowErrors(t *testing.T) {
	tests := map[string]struct {
		raw  string
		want core.Kind
	}{
		"missing id":       {raw: "", want: core.KindMissingParameter},
		"not a number":     {raw: "abc", want: core.KindNotANumber},
		"unknown id":       {raw: "9", want: core.KindNotFound},
		"negative unknown": {raw: "-1", want: core.KindNotFound},
		"out of range id":  {raw: "99999999999999999999", want: core.KindNotFound},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := makeCommands(t, "", spain)

			err := f.cmds.Show(context.Background(), tt.raw)
			require.Equal(t, tt.want, core.KindOf(err))
			require.Empty(t, f.out.String())
		})
	}
}

func TestCommands_List(t *testing.T) {
	f := makeCommands(t, "", spain, [2]string{"Capital of Italy", "Rome"})

	require.NoError(t, f.cmds.List(context.Background()))
	require.Equal(t, " [1]: Capital of Spain\n [2]: Capital of Italy\n", f.out.String())
}

func TestCommands_Delete(t *testing.T) {
	f := makeCommands(t, "", spain)
	ctx := context.Background()

	require.NoError(t, f.cmds.Delete(ctx, "1"))
	n, err := f.repo.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)

	require.NoError(t, f.cmds.Delete(ctx, "1"), "deleting a missing id should succeed")
	require.NoError(t, f.cmds.Delete(ctx, "404"))
	require.Equal(t, core.KindMissingParameter, core.KindOf(f.cmds.Delete(ctx, "")))
}

func TestCommands_Add(t *testing.T) {
	f := makeCommands(t, "  Capital of France \nParis\n")
	ctx := context.Background()

	require.NoError(t, f.cmds.Add(ctx))

	q, err := f.repo.FindByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, q)
	require.Equal(t, "Capital of France", q.Question)
	require.Equal(t, "Paris", q.Answer)
	require.Equal(t, " Enter a question:  Enter the answer:  Added: Capital of France => Paris\n", f.out.String())
}

func TestCommands_AddEmptyQuestion(t *testing.T) {
	f := makeCommands(t, "\nParis\n")
	ctx := context.Background()

	err := f.cmds.Add(ctx)
	require.Equal(t, core.KindFieldValidation, core.KindOf(err))

	f.out.Reset()
	f.console.Error(err)
	require.Contains(t, f.out.String(), "Error: question must not be empty")

	n, err := f.repo.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n, "should not create a record")
}

func TestCommands_AddClosedInput(t *testing.T) {
	f := makeCommands(t, "only a question\n")

	err := f.cmds.Add(context.Background())
	require.ErrorIs(t, err, io.EOF)
}

func TestCommands_Edit(t *testing.T) {
	f := makeCommands(t, "Capital of Spain?\nmadrid\n", spain)
	ctx := context.Background()

	require.NoError(t, f.cmds.Edit(ctx, "1"))

	q, err := f.repo.FindByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Capital of Spain?", q.Question)
	require.Equal(t, "madrid", q.Answer)
	require.Contains(t, f.out.String(), " Quiz 1 changed to: Capital of Spain? => madrid\n")
}

func TestCommands_EditErrors(t *testing.T) {
	t.Run("unknown id asks nothing", func(t *testing.T) {
		f := makeCommands(t, "q\na\n", spain)

		err := f.cmds.Edit(context.Background(), "2")
		require.Equal(t, core.KindNotFound, core.KindOf(err))
		require.Empty(t, f.out.String())
	})

	t.Run("empty answer keeps the stored quiz", func(t *testing.T) {
		f := makeCommands(t, "Capital of Spain\n\n", spain)
		ctx := context.Background()

		err := f.cmds.Edit(ctx, "1")
		require.Equal(t, core.KindFieldValidation, core.KindOf(err))

		q, err := f.repo.FindByID(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, "Madrid", q.Answer)
	})
}

func TestCommands_Test(t *testing.T) {
	tests := map[string]struct {
		answer string
		want   string
	}{
		"exact":        {answer: "Madrid", want: "Your answer is correct."},
		"padded lower": {answer: " madrid ", want: "Your answer is correct."},
		"upper":        {answer: "MADRID", want: "Your answer is correct."},
		"wrong city":   {answer: "Barcelona", want: "Your answer is incorrect."},
		"blank answer": {answer: "", want: "Your answer is incorrect."},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := makeCommands(t, tt.answer+"\n", spain)

			require.NoError(t, f.cmds.Test(context.Background(), "1"))

			out := f.out.String()
			require.True(t, strings.HasPrefix(out, "Capital of Spain: "), "should prompt with the question")
			require.Contains(t, out, tt.want+"\n")
		})
	}
}

func TestCommands_TestUnknownID(t *testing.T) {
	f := makeCommands(t, "Madrid\n", spain)

	err := f.cmds.Test(context.Background(), "3")
	require.Equal(t, core.KindNotFound, core.KindOf(err))
	require.Equal(t, "no quiz for id=3", err.Error())
}
