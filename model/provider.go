// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package model

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

const (
	ProviderGitHub    = "github"
	ProviderGitLab    = "gitlab"
	ProviderBitbucket = "bitbucket"
)

var (
	schemePrefix = regexp.MustCompile(`^https?://`)
	hostPrefix   = regexp.MustCompile(`^(github\.com|gitlab\.com|bitbucket\.org)/`)
)

// ErrMalformedRepository is returned when a repository identifier can not be
// split into an owner and a name.
var ErrMalformedRepository = errors.New("malformed repository identifier")

// ProviderFromRepo detects the hosting provider from the host part of a
// repository URL. Identifiers without a host, like "owner/name", are GitHub.
func ProviderFromRepo(repoID string) string {
	host := repoHost(repoID)
	switch {
	case strings.Contains(host, "gitlab"):
		return ProviderGitLab
	case strings.Contains(host, "bitbucket"):
		return ProviderBitbucket
	default:
		return ProviderGitHub
	}
}

// repoHost returns the lower cased host of a repository URL, or "" when the
// first path segment is not a host name.
func repoHost(repoID string) string {
	trimmed := schemePrefix.ReplaceAllString(strings.ToLower(strings.TrimSpace(repoID)), "")
	first := strings.SplitN(trimmed, "/", 2)[0]
	if !strings.Contains(first, ".") {
		return ""
	}
	return first
}

// NormalizeRepoID strips the scheme, the well known hosts and the .git suffix.
func NormalizeRepoID(repoID string) string {
	normalized := schemePrefix.ReplaceAllString(strings.TrimSpace(repoID), "")
	normalized = hostPrefix.ReplaceAllString(normalized, "")
	normalized = strings.TrimSuffix(normalized, ".git")
	return strings.Trim(normalized, "/")
}

// SplitRepoID splits "owner/name". GitLab paths may carry nested groups, in
// which case the owner is everything before the last slash.
func SplitRepoID(repoID string) (owner, name string, err error) {
	normalized := NormalizeRepoID(repoID)
	idx := strings.LastIndex(normalized, "/")
	if idx <= 0 || idx == len(normalized)-1 {
		return "", "", errors.Wrapf(ErrMalformedRepository, "repository %q", repoID)
	}
	return normalized[:idx], normalized[idx+1:], nil
}

// IssueURL builds the web URL of an issue for the given provider.
func IssueURL(repoID string, number int, provider string) string {
	normalized := NormalizeRepoID(repoID)
	switch provider {
	case ProviderGitLab:
		return fmt.Sprintf("https://gitlab.com/%s/-/issues/%d", normalized, number)
	case ProviderBitbucket:
		return fmt.Sprintf("https://bitbucket.org/%s/issues/%d", normalized, number)
	default:
		return fmt.Sprintf("https://github.com/%s/issues/%d", normalized, number)
	}
}
