package core

// Ownership predicates. Pure - no I/O, no clock - so they can be checked
// before any store mutation and tested exhaustively.

// CanModifyAccount reports whether p may mutate the account identified by
// targetID. Only the account owner may.
func CanModifyAccount(p *Principal, targetID string) bool {
	return p != nil && targetID != "" && p.ID == targetID
}

// CanDeletePost reports whether p may delete post. Only the owner may.
func CanDeletePost(p *Principal, post *Post) bool {
	return p != nil && post != nil && p.ID == post.PostedBy
}

// CanFollow returns ErrSelfFollow when p targets itself, nil otherwise.
// Whether the toggle follows or unfollows is decided by current edge
// membership, not by policy.
func CanFollow(p *Principal, targetID string) error {
	if p == nil {
		return ErrUnauthenticated
	}
	if p.ID == targetID {
		return ErrSelfFollow
	}
	return nil
}
