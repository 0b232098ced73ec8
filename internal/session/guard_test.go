// ABOUTME: Tests for the route guard decision
// ABOUTME: Table-driven over every session state combination

package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  Decision
	}{
		{"loading", State{Loading: true}, Wait},
		{"loading and authenticated", State{Loading: true, Authenticated: true, Username: "ivan"}, Wait},
		{"authenticated", State{Authenticated: true, Username: "ivan"}, Allow},
		{"signed out", State{}, RedirectLogin},
		{"authenticated without username", State{Authenticated: true}, Allow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.state))
		})
	}
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "wait", Wait.String())
	assert.Equal(t, "allow", Allow.String())
	assert.Equal(t, "redirect-login", RedirectLogin.String())
}
