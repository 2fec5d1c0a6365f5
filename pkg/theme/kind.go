package theme

// Kind identifies a renderable component class. The set is closed:
// the spacing table must cover every value, and render dispatch matches
// exhaustively, so adding a kind is a single-point change here plus a
// spacing rule.
type Kind int

const (
	KindHeader Kind = iota
	KindSection
	KindInfo
	KindSuccess
	KindWarning
	KindError
	KindDebug
	KindListItem
	KindTable
	KindCode
	KindJSON
	KindSummary
	KindProgress
	KindSpinner
	KindPrompt
	KindConfirm
	KindDivider
	KindSuggestions

	kindCount // sentinel, keep last
)

var kindNames = [kindCount]string{
	KindHeader:      "header",
	KindSection:     "section",
	KindInfo:        "info",
	KindSuccess:     "success",
	KindWarning:     "warning",
	KindError:       "error",
	KindDebug:       "debug",
	KindListItem:    "list_item",
	KindTable:       "table",
	KindCode:        "code",
	KindJSON:        "json",
	KindSummary:     "summary",
	KindProgress:    "progress",
	KindSpinner:     "spinner",
	KindPrompt:      "prompt",
	KindConfirm:     "confirm",
	KindDivider:     "divider",
	KindSuggestions: "suggestions",
}

// String returns the stable lowercase name used in YAML theme files.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// AllKinds returns every component kind in declaration order.
func AllKinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// KindFromString resolves a kind by its stable name.
// Returns false for names outside the closed set.
func KindFromString(name string) (Kind, bool) {
	for k := Kind(0); k < kindCount; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return 0, false
}
