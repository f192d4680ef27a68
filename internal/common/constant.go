package common

// SessionIDHeaderName is the HTTP header used to carry the client session id
// on outbound requests, so the file service can correlate optimistic batches.
const SessionIDHeaderName = "X-Filedeck-Session"
