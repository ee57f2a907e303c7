package auth

// CodeInvalidToken marks tokens that failed verification.
const CodeInvalidToken = "invalid_token"
