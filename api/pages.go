package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const createFarmPageHTML = `<!DOCTYPE html>
<html>
<head><title>Create Farm</title></head>
<body>
<h1>Create Farm</h1>
<form id="create-farm">
  <label>Name <input name="name"></label>
  <label>Location <input name="location"></label>
  <button type="submit">Create</button>
</form>
</body>
</html>`

const managePageHTML = `<!DOCTYPE html>
<html>
<head><title>Farm Management</title></head>
<body>
<h1>Farm Management</h1>
<div id="farms"></div>
</body>
</html>`

func (ctl *controller) createFarmPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(createFarmPageHTML))
}

func (ctl *controller) managePage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(managePageHTML))
}
