package gate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    State
		event   Event
		want    State
		wantErr bool
	}{
		{name: "restore found", from: Initializing, event: Restored, want: Authenticated},
		{name: "restore empty", from: Initializing, event: RestoreEmpty, want: Unauthenticated},
		{name: "login starts", from: Unauthenticated, event: LoginStarted, want: Initializing},
		{name: "login ok", from: Initializing, event: LoginSucceeded, want: Authenticated},
		{name: "login failed", from: Initializing, event: LoginFailed, want: Unauthenticated},
		{name: "logout authenticated", from: Authenticated, event: LoggedOut, want: Unauthenticated},
		{name: "logout unauthenticated", from: Unauthenticated, event: LoggedOut, want: Unauthenticated},
		{name: "logout initializing", from: Initializing, event: LoggedOut, want: Unauthenticated},
		{name: "relogin", from: Authenticated, event: LoginStarted, want: Initializing},
		{name: "restore twice", from: Authenticated, event: Restored, want: Authenticated, wantErr: true},
		{name: "success without start", from: Unauthenticated, event: LoginSucceeded, want: Unauthenticated, wantErr: true},
		{name: "excluded is not a session state", from: ExcludedRoute, event: LoggedOut, want: ExcludedRoute, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transition(tt.from, tt.event)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrIllegalTransition)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestClassifier(t *testing.T) {
	c := NewClassifier("/login", "/password-reset", " ")

	require.Equal(t, Public, c.Classify("/login"))
	require.Equal(t, Public, c.Classify("/login/help"))
	require.Equal(t, Public, c.Classify("/password-reset"))
	require.Equal(t, Protected, c.Classify("/users"))
	require.Equal(t, Protected, c.Classify("/"))
	require.Equal(t, Protected, c.Classify("/create-user"))
}

func TestResolve(t *testing.T) {
	for _, s := range []State{Initializing, Unauthenticated, Authenticated} {
		d := Resolve(s, Public)
		require.Equal(t, Decision{State: ExcludedRoute, Action: Render}, d, s.String())
	}

	require.Equal(t, Decision{State: Authenticated, Action: Render}, Resolve(Authenticated, Protected))
	require.Equal(t, Decision{State: Initializing, Action: Loading}, Resolve(Initializing, Protected))
	require.Equal(t, Decision{State: Unauthenticated, Action: Redirect}, Resolve(Unauthenticated, Protected))
}

func TestStrings(t *testing.T) {
	require.Equal(t, "authenticated", Authenticated.String())
	require.Equal(t, "login_started", LoginStarted.String())
	require.Equal(t, "redirect", Redirect.String())
	require.Equal(t, "state(42)", State(42).String())
}
