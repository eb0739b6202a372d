package session

import (
	"context"
	"time"
)

// Refresher exchanges a refresh token for a new credential pair.
type Refresher interface {
	Refresh(ctx context.Context, accessToken, refreshToken string) (Tokens, error)
}

type RefreshPolicy struct {
	Lookahead time.Duration
	Lifetime  time.Duration
}

func DefaultRefreshPolicy() RefreshPolicy {
	return RefreshPolicy{
		Lookahead: DefaultRefreshLookahead,
		Lifetime:  DefaultAccessTokenLifetime,
	}
}

// RefreshOutcome describes what RefreshIfNeeded did.
type RefreshOutcome int

const (
	RefreshSkipped RefreshOutcome = iota
	Refreshed
	RefreshFailed
)

// RefreshIfNeeded calls r at most once, and only when now is inside the refresh window.
// On failure the returned session is marked expired together with the refresher's error.
func RefreshIfNeeded(ctx context.Context, s Session, now time.Time, policy RefreshPolicy, r Refresher) (Session, RefreshOutcome, error) {
	if !s.NeedsRefresh(now, policy.Lookahead) {
		return s, RefreshSkipped, nil
	}

	m := Resume(s)
	tokens, err := r.Refresh(ctx, s.AccessToken, s.RefreshToken)
	if err == nil && tokens.AccessToken == "" {
		err = ErrMissingAccessToken
	}
	if err != nil {
		next, _ := Transition(m, Event{Kind: EventRefreshFailed})
		return next.Session, RefreshFailed, err
	}

	next, _ := Transition(m, Event{
		Kind:     EventRefreshSucceeded,
		Tokens:   tokens,
		Now:      now,
		Lifetime: policy.Lifetime,
	})
	return next.Session, Refreshed, nil
}
