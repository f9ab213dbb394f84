package cmd

import (
	"fmt"
	"testing"

	"github.com/google/subcommands"
)

func TestTopicCmd(t *testing.T) {
	testCases := []struct {
		args []string
		want subcommands.ExitStatus
	}{
		{nil, subcommands.ExitSuccess},
		{[]string{"-l"}, subcommands.ExitSuccess},
		{[]string{"format", "shell"}, subcommands.ExitSuccess},
		{[]string{"*"}, subcommands.ExitSuccess},
		{[]string{"nope"}, subcommands.ExitFailure},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprint(tc.args), func(t *testing.T) {
			if got := execute(t, &topicCmd{}, tc.args...); got != tc.want {
				t.Errorf("topic %v = %v, want %v", tc.args, got, tc.want)
			}
		})
	}
}
