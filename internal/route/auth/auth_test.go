package auth

import (
	"testing"
)

func TestValidateRegistration(t *testing.T) {
	testCases := []struct {
		name         string
		username     string
		password     string
		confirmation string
		want         string
	}{
		{
			name:         "Valid registration",
			username:     "alice",
			password:     "hunter2",
			confirmation: "hunter2",
			want:         "",
		},
		{
			name:         "Missing username",
			username:     "",
			password:     "hunter2",
			confirmation: "hunter2",
			want:         "must provide username",
		},
		{
			name:         "Missing password",
			username:     "alice",
			password:     "",
			confirmation: "",
			want:         "must provide password",
		},
		{
			name:         "Confirmation mismatch",
			username:     "alice",
			password:     "hunter2",
			confirmation: "hunter3",
			want:         "password does not match confirmation",
		},
		{
			name:         "Missing confirmation",
			username:     "alice",
			password:     "hunter2",
			confirmation: "",
			want:         "password does not match confirmation",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			got := validateRegistration(
				testCase.username,
				testCase.password,
				testCase.confirmation,
			)

			if got != testCase.want {
				t.Errorf("validateRegistration() = %q, want %q", got, testCase.want)
			}
		})
	}
}
