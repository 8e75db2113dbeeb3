package api

import (
	"net/http"

	"github.com/Thatonecodeguy/locksum-contractor-books/internal/constants"
	"github.com/Thatonecodeguy/locksum-contractor-books/internal/dedupe"
	"github.com/Thatonecodeguy/locksum-contractor-books/internal/storage"
	"github.com/gin-gonic/gin"
)

// statusPageHTML is the static landing page served at "/". It has no
// inputs and no dynamic values; rendering it twice yields byte-identical
// output.
const statusPageHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Locksum</title>
<style>
body { font-family: sans-serif; max-width: 40rem; margin: 4rem auto; padding: 0 1rem; color: #222; }
.card { border: 1px solid #ddd; border-radius: 8px; padding: 1rem 1.5rem; background: #fafafa; }
code { background: #eee; padding: 0.1rem 0.3rem; border-radius: 4px; }
</style>
</head>
<body>
<h1>Locksum</h1>
<p>Simple books for contractors: auth - customers - items - invoices.</p>
<div class="card">
<h2>API status</h2>
<p>The service is running. Try <code>GET /api/health</code> to check API liveness.</p>
</div>
</body>
</html>
`

// StatusPage serves the static landing page.
func StatusPage(c *gin.Context) {
	c.Data(http.StatusOK, constants.ContentTypeHTML, []byte(statusPageHTML))
}

// Health reports liveness. The database ping behind it is deduplicated so
// a burst of probes costs a single round trip.
func Health(repo storage.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, err, _ := dedupe.HealthGroup.Do("db-ping", func() (interface{}, error) {
			return nil, repo.Ping()
		})
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{constants.JSONKeyStatus: "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "ok"})
	}
}
