package i18n

// MessageID names a translatable string in the catalogs.
type MessageID string

const (
	BrowsingAddon           MessageID = "browsing-addon"
	BrowsingQuestion        MessageID = "browsing-question"
	BrowsingAnswer          MessageID = "browsing-answer"
	DecksDeck               MessageID = "decks-deck"
	StatisticsDueDate       MessageID = "statistics-due-date"
	BrowsingEase            MessageID = "browsing-ease"
	BrowsingInterval        MessageID = "browsing-interval"
	SchedulingLapses        MessageID = "scheduling-lapses"
	SearchCardModified      MessageID = "search-card-modified"
	SchedulingReviews       MessageID = "scheduling-reviews"
	BrowsingCard            MessageID = "browsing-card"
	EditingCards            MessageID = "editing-cards"
	BrowsingCreated         MessageID = "browsing-created"
	BrowsingAverageEase     MessageID = "browsing-average-ease"
	BrowsingSortField       MessageID = "browsing-sort-field"
	BrowsingAverageInterval MessageID = "browsing-average-interval"
	SearchNoteModified      MessageID = "search-note-modified"
	EditingTags             MessageID = "editing-tags"
	BrowsingNote            MessageID = "browsing-note"
)

// Messages lists every id the English catalog must define.
var Messages = []MessageID{
	BrowsingAddon,
	BrowsingQuestion,
	BrowsingAnswer,
	DecksDeck,
	StatisticsDueDate,
	BrowsingEase,
	BrowsingInterval,
	SchedulingLapses,
	SearchCardModified,
	SchedulingReviews,
	BrowsingCard,
	EditingCards,
	BrowsingCreated,
	BrowsingAverageEase,
	BrowsingSortField,
	BrowsingAverageInterval,
	SearchNoteModified,
	EditingTags,
	BrowsingNote,
}
