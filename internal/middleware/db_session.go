package middleware

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const dbSessionKey = "db"

// DBSession binds a database handle scoped to the request context, so a
// cancelled request cancels its queries.
func DBSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(dbSessionKey, db.WithContext(c.Request.Context()))
		c.Next()
	}
}

// DB returns the request's database handle, or nil outside DBSession.
func DB(c *gin.Context) *gorm.DB {
	if v, ok := c.Get(dbSessionKey); ok {
		if db, ok := v.(*gorm.DB); ok {
			return db
		}
	}
	return nil
}
