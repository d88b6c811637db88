package mention

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/QVllasa/signalleague/internal/database/types"
	"github.com/QVllasa/signalleague/internal/database/types/enum"
)

const maxSlugLength = 100

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// slugify creates a URL-friendly slug from a name.
func slugify(text string) string {
	slug := slugInvalid.ReplaceAllString(strings.ToLower(text), "-")
	slug = strings.Trim(slug, "-")

	if len(slug) > maxSlugLength {
		slug = slug[:maxSlugLength]
	}

	return slug
}

// deriveGroupName picks a name for a newly discovered group. The link handle
// is used when it is meaningful, otherwise the promoting author plus the
// platform.
func deriveGroupName(link types.MentionLink, authorUsername string) string {
	handle, _, _ := strings.Cut(link.Handle, "/")
	if len(handle) > 2 {
		return handle
	}

	return fmt.Sprintf("%s-%s", authorUsername, link.Platform)
}

// matchLinkToGroup tries to match an extracted link to a known approved
// group by platform URL, platform handle, slug, or squashed name.
func matchLinkToGroup(link types.MentionLink, groups []*types.SignalGroup) *types.SignalGroup {
	urlLower := strings.ToLower(link.URL)
	handleLower := strings.ToLower(link.Handle)

	for _, group := range groups {
		if group.PlatformURL != "" && strings.Contains(urlLower, strings.ToLower(group.PlatformURL)) {
			return group
		}

		if group.PlatformHandle != "" && handleLower == strings.ToLower(group.PlatformHandle) {
			return group
		}

		if handleLower == strings.ToLower(group.Slug) ||
			handleLower == whitespace.ReplaceAllString(strings.ToLower(group.Name), "") {
			return group
		}
	}

	return nil
}

// actionFor maps a tweet classification to the bot queue action it should
// trigger.
func actionFor(tweetType enum.TweetType) enum.QueueAction {
	switch tweetType {
	case enum.TweetTypePnLPost:
		return enum.QueueActionPnLCommentary
	case enum.TweetTypeGroupPromo:
		return enum.QueueActionGroupDiscovery
	case enum.TweetTypeScamReport:
		return enum.QueueActionScamAlert
	default:
		return enum.QueueActionGeneralCT
	}
}
