package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/Guerrilla-Interactive/justrun/app/controller"
	"github.com/Guerrilla-Interactive/justrun/app/recipe"
)

func TestPrintRecipes(t *testing.T) {
	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))

	printRecipes(out, []recipe.Recipe{
		{Name: "test", Description: "run tests"},
		{Name: "ci::lint", SourceFile: "ci.just"},
	})
	assert.Equal(t, "test      # run tests\nci::lint  (ci.just)\n", buf.String())
}

func TestWarnOrFail(t *testing.T) {
	var stderr bytes.Buffer
	c := &cobra.Command{}
	c.SetErr(&stderr)

	assert.NoError(t, warnOrFail(c, controller.ErrNoRecipes))
	assert.Contains(t, stderr.String(), "Warning: no recipes found")

	boom := errors.New("boom")
	assert.Equal(t, boom, warnOrFail(c, boom))
}

func TestVersionCommand(t *testing.T) {
	var stdout bytes.Buffer
	version = "v9.9.9"
	versionCmd.SetOut(&stdout)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "justrun version v9.9.9\n", stdout.String())
}
