package domain

// Date layouts used for keys and user-facing text.
const (
	// ISOLayout is the UTC instant embedded in sort keys (millisecond precision).
	ISOLayout = "2006-01-02T15:04:05.000Z"
	// DayLayout is the day-bucket layout.
	DayLayout = "2006-01-02"
	// HourPrefixLayout is the UTC hour prefix of a sort key.
	HourPrefixLayout = "2006-01-02T15:"
)

// SortKeySeparator joins the ISO instant and the message id inside a sort key.
const SortKeySeparator = ","

// SortKeyUpperSentinel sorts after every character a message id may contain.
const SortKeyUpperSentinel = "~"

// Offset policies for the timezone normalizer.
const (
	// OffsetAtTarget applies the canonical zone's offset in effect at the target instant.
	OffsetAtTarget = "target"
	// OffsetAtEvaluation applies the offset in effect when the request is evaluated.
	OffsetAtEvaluation = "evaluation"
)

// DefaultTimezone is the canonical timezone when none is configured.
const DefaultTimezone = "America/New_York"

// User-facing texts.
const (
	MsgGenericError     = "Oops, we hit an unexpected error. Please try again."
	MsgValidationError  = "The request could not be validated."
	MsgAck              = "Got it. Scheduled the message:"
	MsgNoDate           = "Hmm... I couldn't find a date in your message:"
	MsgNoMessage        = "Oops, I found a date but no message: "
	MsgMissingID        = "Hmm... I don't think you sent an ID."
	MsgNoMessages       = "You do not have any messages scheduled."
	MsgListHeader       = "Your messages:"
	MsgListFailed       = "Unable to get your scheduled messages."
	MsgDeleted          = "Deleted message with ID: "
	MsgDeleteNotFound   = "No pending message found, it may have already been sent or deleted. ID: "
	MsgAlreadyHandled   = "That message was already handled and can no longer be deleted. ID: "
	MsgDeleteFailed     = "We encountered an error while deleting message with ID: "
	MsgMissingTokenTmpl = "You might need to authorize the app to post messages on your behalf. Please visit %s"
	MsgWorking          = "Working on it ..."
)

// HelpText is shown for `/send`, `/send help` and unknown sub-commands.
const HelpText = "Hmm... Did you forget to type a message?\n\n" +
	"Schedule a message with */send your message tomorrow at 9am*.\n\n" +
	"You could also try:\n\n" +
	"- */slist [inline]* or */send list [inline]*\n" +
	"List unsent messages.\n" +
	"_inline_ prints in the channel for everyone to see.\n\n" +
	"- */sdelete ID* or */send delete ID*\n" +
	"Delete a message"
