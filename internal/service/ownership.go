package service

// checkOwnership reports whether requesterID may mutate a resource owned by
// ownerID. Roles play no part here: authorship is the only thing that grants
// write access to an existing resource, so even another author is rejected.
func checkOwnership(requesterID, ownerID int64) error {
	if requesterID != ownerID {
		return ErrNotOwner
	}

	return nil
}
