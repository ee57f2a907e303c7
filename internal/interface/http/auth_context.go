package http

import "github.com/gin-gonic/gin"

const authSubjectKey = "auth_subject"

func setSubject(c *gin.Context, subject string) {
	c.Set(authSubjectKey, subject)
}

// subjectFrom returns the authenticated caller, if the request carried a token.
func subjectFrom(c *gin.Context) (string, bool) {
	subject := c.GetString(authSubjectKey)
	return subject, subject != ""
}
