// Package gitver derives version metadata from the nearest git tag so badge
// messages can carry the project version.
package gitver

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// VersionInfo holds resolved version metadata from git.
type VersionInfo struct {
	Version   string // "1.2.3", or "1.2.3-dev+abc1234" off a tag, or "0.0.0-dev+abc1234" untagged
	Tag       string
	SHA       string
	Branch    string
	IsRelease bool // HEAD is exactly at Tag
}

// Vars returns the placeholders a badge message can reference.
func (v *VersionInfo) Vars() map[string]string {
	return map[string]string{
		"git_version": v.Version,
		"git_tag":     v.Tag,
		"git_sha":     v.SHA,
		"git_branch":  v.Branch,
	}
}

// DetectVersion resolves version info for the repository containing dir.
// The nearest semver tag in HEAD's history wins; non-semver tags are ignored.
func DetectVersion(dir string) (*VersionInfo, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("getting HEAD: %w", err)
	}
	v := &VersionInfo{SHA: head.Hash().String()[:7]}
	if head.Name().IsBranch() {
		v.Branch = head.Name().Short()
	}

	tags, err := semverTags(repo)
	if err != nil {
		return nil, err
	}

	commits, err := repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("walking history: %w", err)
	}
	var nearest *taggedVersion
	err = commits.ForEach(func(c *object.Commit) error {
		if t, ok := tags[c.Hash]; ok {
			nearest = t
			v.IsRelease = c.Hash == head.Hash()
			return storer.ErrStop
		}
		return nil
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		return nil, fmt.Errorf("walking history: %w", err)
	}

	switch {
	case nearest == nil:
		v.Version = "0.0.0-dev+" + v.SHA
	case v.IsRelease:
		v.Tag = nearest.name
		v.Version = nearest.version.String()
	default:
		v.Tag = nearest.name
		v.Version = fmt.Sprintf("%s-dev+%s", nearest.version, v.SHA)
	}
	return v, nil
}

type taggedVersion struct {
	name    string
	version *semver.Version
}

// semverTags maps commit hashes to the highest semver tag pointing at them.
// Annotated tags are peeled to their target commit.
func semverTags(repo *git.Repository) (map[plumbing.Hash]*taggedVersion, error) {
	iter, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	out := make(map[plumbing.Hash]*taggedVersion)
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		ver, err := semver.StrictNewVersion(trimV(name))
		if err != nil {
			return nil
		}
		hash := ref.Hash()
		if tag, err := repo.TagObject(hash); err == nil {
			commit, err := tag.Commit()
			if err != nil {
				return nil
			}
			hash = commit.Hash
		}
		if cur, ok := out[hash]; !ok || ver.GreaterThan(cur.version) {
			out[hash] = &taggedVersion{name: name, version: ver}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	return out, nil
}

func trimV(s string) string {
	if len(s) > 1 && s[0] == 'v' {
		return s[1:]
	}
	return s
}
