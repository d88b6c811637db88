package classifier

import (
	"regexp"
	"strings"

	"github.com/QVllasa/signalleague/internal/database/types"
	"github.com/QVllasa/signalleague/internal/database/types/enum"
)

// linkPattern pairs a platform with the regex that captures its invite
// handle. The scheme is optional so bare "t.me/foo" mentions still match.
type linkPattern struct {
	platform enum.LinkPlatform
	regex    *regexp.Regexp
	baseURL  string
}

var linkPatterns = []linkPattern{
	{
		platform: enum.LinkPlatformTelegram,
		regex:    regexp.MustCompile(`(?i)(?:https?://)?t\.me/([a-zA-Z0-9_]+(?:/[a-zA-Z0-9_]+)?)`),
		baseURL:  "https://t.me/",
	},
	{
		platform: enum.LinkPlatformDiscord,
		regex:    regexp.MustCompile(`(?i)(?:https?://)?discord\.gg/([a-zA-Z0-9_-]+)`),
		baseURL:  "https://discord.gg/",
	},
	{
		platform: enum.LinkPlatformWhop,
		regex:    regexp.MustCompile(`(?i)(?:https?://)?whop\.com/([a-zA-Z0-9_-]+(?:/[a-zA-Z0-9_-]+)?)`),
		baseURL:  "https://whop.com/",
	},
}

// ExtractGroupLinks extracts Telegram, Discord, and Whop invite links from
// text. Each match is rebuilt as a canonical https URL.
func ExtractGroupLinks(text string) []types.MentionLink {
	var links []types.MentionLink

	for _, pattern := range linkPatterns {
		for _, match := range pattern.regex.FindAllStringSubmatch(text, -1) {
			handle := match[1]

			links = append(links, types.MentionLink{
				Platform: pattern.platform,
				URL:      pattern.baseURL + handle,
				Handle:   handle,
			})
		}
	}

	return links
}

// DeduplicateLinks removes links whose URL differs only in case.
func DeduplicateLinks(links []types.MentionLink) []types.MentionLink {
	seen := make(map[string]struct{}, len(links))
	unique := make([]types.MentionLink, 0, len(links))

	for _, link := range links {
		normalized := strings.ToLower(link.URL)
		if _, ok := seen[normalized]; ok {
			continue
		}

		seen[normalized] = struct{}{}
		unique = append(unique, link)
	}

	return unique
}
