package completion_helper

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"
)

func TestDefaultFlagComplete(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cli.Command{
		Name:   "reconfig",
		Writer: &buf,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "show", Aliases: []string{"s"}},
		},
	}

	DefaultFlagComplete(context.Background(), cmd)

	assert.Equal(t, "--show\n-s\n", buf.String())
}
