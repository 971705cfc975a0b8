// Copyright (c) 2021 The Decred developers
// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version

import "runtime/debug"

// vcsCommitID returns the VCS revision recorded in the build information of
// the running binary.
func vcsCommitID() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	return vcsRevision(bi.Settings)
}

// vcsRevision returns the revision named by the provided build settings.  Git
// revisions are shortened to nine characters and a revision built from a tree
// with local modifications is suffixed with "-dirty".  It is empty when no VCS
// or revision is recorded.
func vcsRevision(settings []debug.BuildSetting) string {
	var vcs, revision string
	var modified bool
	for _, bs := range settings {
		switch bs.Key {
		case "vcs":
			vcs = bs.Value
		case "vcs.revision":
			revision = bs.Value
		case "vcs.modified":
			modified = bs.Value == "true"
		}
	}
	if vcs == "" || revision == "" {
		return ""
	}
	if vcs == "git" && len(revision) > 9 {
		revision = revision[:9]
	}
	if modified {
		revision += "-dirty"
	}
	return revision
}
