package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCommand(t *testing.T) {
	tests := []struct {
		name        string
		arg         string
		json        bool
		wantErr     bool
		wantContain []string
	}{
		{name: "valid", arg: "My.Company.Interop", wantContain: []string{"Valid:", "My.Company.Interop"}},
		{name: "underscore start", arg: "_private.ns", wantContain: []string{"Valid:"}},
		{name: "leading digit", arg: "9Lives", wantErr: true, wantContain: []string{"Invalid:", "System.Runtime.InteropServices"}},
		{name: "double dot", arg: "a..b", wantErr: true, wantContain: []string{"Invalid:"}},
		{name: "trailing dot", arg: "Ns.", wantErr: true},
		{name: "json valid", arg: "Ns", json: true, wantContain: []string{`"valid": true`, `"applied": "Ns"`}},
		{
			name:        "json invalid",
			arg:         "bad name",
			json:        true,
			wantErr:     true,
			wantContain: []string{`"valid": false`, `"applied": "System.Runtime.InteropServices"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGlobals(t)
			jsonOut = tt.json

			output, err := captureOutput(t, func() error {
				return runCheck([]string{tt.arg})
			})
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			if tt.json {
				decodeJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}

func TestCheckCommandQuiet(t *testing.T) {
	resetGlobals(t)
	quiet = true
	output, err := captureOutput(t, func() error {
		return runCheck([]string{"1bad"})
	})
	assert.Error(t, err)
	assert.Empty(t, output)
}
