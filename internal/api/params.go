package api

import (
	"alcyxob/fittrack/internal/stats"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// pathObjectID parses the named path parameter as an ObjectID, aborting with 400 on failure.
func pathObjectID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s format.", name))
		return primitive.NilObjectID, false
	}
	return id, true
}

// queryDate parses an optional YYYY-MM-DD query parameter; absent yields the zero time.
func queryDate(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(stats.DateFormat, raw)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid '%s' date, expected YYYY-MM-DD.", name))
		return time.Time{}, false
	}
	return t, true
}

// queryRange reads ?from=&to= as inclusive calendar days and returns the
// half-open [from, to+1d) range the repositories expect. ?date= is a one-day range.
func queryRange(c *gin.Context) (from, to time.Time, ok bool) {
	if d, ok := queryDate(c, "date"); !ok {
		return from, to, false
	} else if !d.IsZero() {
		return d, d.AddDate(0, 0, 1), true
	}
	if from, ok = queryDate(c, "from"); !ok {
		return
	}
	if to, ok = queryDate(c, "to"); !ok {
		return
	}
	if !to.IsZero() {
		to = to.AddDate(0, 0, 1)
	}
	return from, to, true
}

// bodyDate parses an optional YYYY-MM-DD string from a request body.
func bodyDate(c *gin.Context, raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(stats.DateFormat, raw)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD.")
		return time.Time{}, false
	}
	return t, true
}
