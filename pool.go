// SPDX-License-Identifier: GPL-2.0-only

package zopfli

import "sync"

// session bundles the per-call scratch state (hash chains and token store)
// so repeated Compress/CompressFixed calls can reuse their backing arrays
// instead of re-allocating the hash's fixed-size tables on every call.
type session struct {
	hash  *slidingHash
	store *lz77Store
}

var sessionPool = sync.Pool{
	New: func() any {
		return &session{
			hash:  newSlidingHash(),
			store: newLZ77Store(),
		}
	},
}

func getSession() *session {
	return sessionPool.Get().(*session)
}

func putSession(s *session) {
	sessionPool.Put(s)
}
