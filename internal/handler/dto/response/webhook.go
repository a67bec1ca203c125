package response

// WebhookResponse is the uniform body returned for every webhook request.
// The service always answers 201; the message string is the only
// success/failure discriminator the caller gets.
type WebhookResponse struct {
	Message string `json:"message"`
}
