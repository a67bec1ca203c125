package usecase

// Response messages. The webhook platform only ever sees HTTP 201 with one of
// these strings, so they are the whole of the service's externally visible
// outcome taxonomy. Do not reword without coordinating with operators who
// grep for them.
const (
	MsgRequestNotPost   = "Request method is not POST"
	MsgDataMissing      = "Required customer or order data is missing"
	MsgMissingTimeInfo  = "Booking start or finish time is missing"
	MsgAlreadyLogged    = "Webhook has already been processed"
	MsgGateUploadFailed = "Failed to upload reservation to the gate server"
	MsgSuccess          = "Notification sent and webhook logged"
	MsgSentNotLogged    = "Notification sent but webhook could not be logged"
	MsgNotSent          = "Webhook received but notification could not be sent"
	MsgProcessingFailed = "Something went wrong while processing the webhook"
)

// OutcomeLabel maps a response message to a stable, low-cardinality metric
// label.
func OutcomeLabel(message string) string {
	switch message {
	case MsgSuccess:
		return "success"
	case MsgAlreadyLogged:
		return "duplicate"
	case MsgRequestNotPost:
		return "wrong_method"
	case MsgDataMissing, MsgMissingTimeInfo:
		return "validation_failed"
	case MsgGateUploadFailed:
		return "gate_upload_failed"
	case MsgSentNotLogged:
		return "sent_not_logged"
	case MsgNotSent:
		return "not_sent"
	default:
		return "error"
	}
}
