package handler

const (
	jsonKeyError   = "error"
	jsonKeyMessage = "message"

	paramID = "id"

	msgContentTypeJSONRequired = "Content-Type must be application/json"
	msgAccessTokenRequired     = "access token is required"
	msgAccessDenied            = "access denied"
	msgInvalidRequestBody      = "invalid request body"
	msgInvalidCredentials      = "invalid email or password"
	msgGenerateTokenFail       = "failed to generate token"
	msgInvalidItineraryID      = "invalid itinerary id"
	msgItineraryNotFound       = "itinerary not found"
	msgItineraryDeleted        = "itinerary deleted successfully"
	msgListCardsFail           = "failed to list access cards"
	msgListSchoolsFail         = "failed to list schools"
	msgUnenrolledStudentCards  = "some student access cards have no enrollments"
	msgResolveLogoFail         = "failed to resolve school logo"
)
