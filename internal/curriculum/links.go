package curriculum

// UnderstandingBase prefixes every Understanding document slug.
const UnderstandingBase = "https://www.w3.org/WAI/WCAG22/Understanding/"

// Links maps success criterion IDs to W3C reference material. A missing
// entry means no link.
type Links struct {
	slugs  map[string]string
	topics map[string]string
	videos map[string]string
}

// Understanding returns the WCAG Understanding document URL for id.
func (l Links) Understanding(id string) (string, bool) {
	slug, ok := l.slugs[id]
	if !ok {
		return "", false
	}
	return UnderstandingBase + slug, true
}

// Video returns the W3C perspective video URL for id.
func (l Links) Video(id string) (string, bool) {
	topic, ok := l.topics[id]
	if !ok {
		return "", false
	}
	url, ok := l.videos[topic]
	return url, ok
}

// DefaultLinks returns the WCAG 2.2 link tables.
func DefaultLinks() Links {
	return Links{slugs: understandingSlugs, topics: videoTopics, videos: videoByTopic}
}

var understandingSlugs = map[string]string{
	"1.1.1":  "non-text-content",
	"1.2.1":  "audio-only-and-video-only-prerecorded",
	"1.2.2":  "captions-prerecorded",
	"1.2.3":  "audio-description-or-media-alternative-prerecorded",
	"1.2.4":  "captions-live",
	"1.2.5":  "audio-description-prerecorded",
	"1.3.1":  "info-and-relationships",
	"1.3.2":  "meaningful-sequence",
	"1.3.3":  "sensory-characteristics",
	"1.3.4":  "orientation",
	"1.3.5":  "identify-input-purpose",
	"1.4.1":  "use-of-color",
	"1.4.2":  "audio-control",
	"1.4.3":  "contrast-minimum",
	"1.4.4":  "resize-text",
	"1.4.5":  "images-of-text",
	"1.4.10": "reflow",
	"1.4.11": "non-text-contrast",
	"1.4.12": "text-spacing",
	"1.4.13": "content-on-hover-or-focus",

	"2.1.1": "keyboard",
	"2.1.2": "no-keyboard-trap",
	"2.1.4": "character-key-shortcuts",
	"2.2.1": "timing-adjustable",
	"2.2.2": "pause-stop-hide",
	"2.3.1": "three-flashes-or-below-threshold",
	"2.4.1": "bypass-blocks",
	"2.4.2": "page-titled",
	"2.4.3": "focus-order",
	"2.4.4": "link-purpose-in-context",
	"2.4.5": "multiple-ways",
	"2.4.6": "headings-and-labels",
	"2.4.7": "focus-visible",
	"2.5.1": "pointer-gestures",
	"2.5.2": "pointer-cancellation",
	"2.5.3": "label-in-name",
	"2.5.4": "motion-actuation",

	"3.1.1": "language-of-page",
	"3.1.2": "language-of-parts",
	"3.2.1": "on-focus",
	"3.2.2": "on-input",
	"3.2.3": "consistent-navigation",
	"3.2.4": "consistent-identification",
	"3.3.1": "error-identification",
	"3.3.2": "labels-or-instructions",
	"3.3.3": "error-suggestion",
	"3.3.4": "error-prevention-legal-financial-data",

	"4.1.1": "parsing",
	"4.1.2": "name-role-value",
	"4.1.3": "status-messages",
}

const videoBase = "https://www.w3.org/WAI/perspective-videos/"

var videoByTopic = map[string]string{
	"captions":       videoBase + "captions/",
	"contrast":       videoBase + "contrast/",
	"keyboard":       videoBase + "keyboard/",
	"notifications":  videoBase + "notifications/",
	"layout":         videoBase + "layout/",
	"speech":         videoBase + "speech/",
	"customizable":   videoBase + "customizable/",
	"understandable": videoBase + "understandable/",
}

var videoTopics = map[string]string{
	"1.1.1":  "speech",
	"1.2.1":  "captions",
	"1.2.2":  "captions",
	"1.2.3":  "captions",
	"1.2.4":  "captions",
	"1.2.5":  "captions",
	"1.3.1":  "layout",
	"1.3.2":  "layout",
	"1.3.3":  "layout",
	"1.3.4":  "layout",
	"1.3.5":  "layout",
	"1.4.1":  "contrast",
	"1.4.2":  "captions",
	"1.4.3":  "contrast",
	"1.4.4":  "customizable",
	"1.4.5":  "speech",
	"1.4.10": "customizable",
	"1.4.11": "contrast",
	"1.4.12": "customizable",
	"1.4.13": "layout",

	"2.1.1": "keyboard",
	"2.1.2": "keyboard",
	"2.1.4": "keyboard",
	"2.2.1": "notifications",
	"2.2.2": "notifications",
	"2.3.1": "notifications",
	"2.4.1": "keyboard",
	"2.4.2": "layout",
	"2.4.3": "keyboard",
	"2.4.4": "layout",
	"2.4.5": "layout",
	"2.4.6": "layout",
	"2.4.7": "keyboard",
	"2.5.1": "keyboard",
	"2.5.2": "keyboard",
	"2.5.3": "notifications",
	"2.5.4": "notifications",

	"3.1.1": "understandable",
	"3.1.2": "understandable",
	"3.2.1": "notifications",
	"3.2.2": "notifications",
	"3.2.3": "layout",
	"3.2.4": "layout",
	"3.3.1": "notifications",
	"3.3.2": "notifications",
	"3.3.3": "notifications",
	"3.3.4": "notifications",

	"4.1.1": "speech",
	"4.1.2": "speech",
	"4.1.3": "notifications",
}
