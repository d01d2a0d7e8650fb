package models

// User carries the account attributes the sync engine cares about: the
// storage quota. The push engine skips file uploads that would not fit.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`

	// UsedStorage and TotalStorage are in bytes. TotalStorage 0 means the
	// account has no quota.
	UsedStorage  int64 `json:"used_storage"`
	TotalStorage int64 `json:"total_storage"`
}

// StorageFits reports whether a blob of the given size still fits into the
// account's quota.
func (u User) StorageFits(size int64) bool {
	if u.TotalStorage <= 0 {
		return true
	}
	return u.UsedStorage+size <= u.TotalStorage
}
