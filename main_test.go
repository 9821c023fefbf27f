package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/rogpeppe/go-internal/testscript"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"minides": main1,
	}))
}

func TestScript(t *testing.T) {
	t.Parallel()
	testscript.Run(t, testscript.Params{
		Dir: filepath.Join("testdata", "script"),
	})
}

func runArgs(args ...string) (code int, stdout, stderr string) {
	var outBuf, errBuf strings.Builder
	code = run(context.Background(), args, &outBuf, &errBuf)
	return code, outBuf.String(), errBuf.String()
}

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		code   int
		stderr string
	}{
		{"NoArgs", nil, 1, `Usage: minides \[flags\] <12-bit ciphertext> \(want exactly one ciphertext argument, got 0\)\n`},
		{"TwoArgs", []string{"000000000000", "1"}, 1, `Usage: .*got 2\)\n`},
		{"BadChar", []string{"00000000002z"}, 1, `minides: parse: invalid bit string: .*offset 10.*\n`},
		{"Short", []string{"0101"}, 1, `minides: parse: invalid bit string: "0101" has 4 characters, want 12\n`},
		{"UnknownFlag", []string{"-nope", "000000000000"}, 1, `(?s)flag provided but not defined: -nope\nUsage: .*`},
		{"DashArgument", []string{"-x"}, 1, `(?s)flag provided but not defined: -x\nUsage: .*`},
		{"Help", []string{"-h"}, 0, `(?s)Usage: .*-workers int.*`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			code, stdout, stderr := runArgs(test.args...)
			qt.Assert(t, qt.Equals(code, test.code))
			qt.Assert(t, qt.Equals(stdout, ""))
			qt.Assert(t, qt.Matches(stderr, test.stderr))
		})
	}
}

func TestRunTable(t *testing.T) {
	code, stdout, stderr := runArgs("000000000000")
	qt.Assert(t, qt.Equals(code, 0))
	qt.Assert(t, qt.Equals(stderr, ""))

	lines := strings.Split(stdout, "\n")
	qt.Assert(t, qt.HasLen(lines, 515)) // trailing newline
	qt.Assert(t, qt.Equals(lines[0], "Ciphertext: 000000000000 (   0)"))
	qt.Assert(t, qt.Equals(lines[2], "000000000 (  0)\t101011010100 (2772)"))
}

func TestRunWorkersSameOutput(t *testing.T) {
	_, want, _ := runArgs("110011001100")
	for _, workers := range []string{"0", "2", "5", "512"} {
		code, got, _ := runArgs("-workers", workers, "110011001100")
		qt.Assert(t, qt.Equals(code, 0))
		qt.Assert(t, qt.Equals(got, want), qt.Commentf("workers=%s", workers))
	}
}

func TestRunDebugLogsToStderr(t *testing.T) {
	code, stdout, stderr := runArgs("-debug", "-workers", "3", "110011001100")
	qt.Assert(t, qt.Equals(code, 0))
	qt.Assert(t, qt.StringContains(stderr, "[minides] ciphertext 110011001100 = 3276\n"))
	qt.Assert(t, qt.StringContains(stderr, "[minides] sharding 512 keys across 3 workers\n"))
	qt.Assert(t, qt.Not(qt.StringContains(stdout, "[minides]")))
}

func TestRunLoggingIsPerInvocation(t *testing.T) {
	for i := 0; i < 8; i++ {
		debug := i%2 == 0
		t.Run(fmt.Sprintf("Debug%v_%d", debug, i), func(t *testing.T) {
			t.Parallel()
			args := []string{"-workers", "2", "110011001100"}
			if debug {
				args = append([]string{"-debug"}, args...)
			}
			code, stdout, stderr := runArgs(args...)
			qt.Assert(t, qt.Equals(code, 0))
			qt.Assert(t, qt.Not(qt.StringContains(stdout, "[minides]")))
			if debug {
				qt.Assert(t, qt.StringContains(stderr, "[minides] stage parse\n"))
			} else {
				qt.Assert(t, qt.Equals(stderr, ""))
			}
		})
	}
}
