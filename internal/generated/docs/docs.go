// Package docs registers the service's OpenAPI document with swag so that
// echo-swagger can serve it under /swagger/doc.json.
package docs

import (
	"encoding/json"
	"sync"

	"deliverytime/internal/generated/servers"

	"github.com/swaggo/swag"
)

type openAPIDoc struct {
	once sync.Once
	doc  string
}

// ReadDoc renders the embedded OpenAPI document as JSON. The server list is dropped
// so the UI targets the host it was loaded from.
func (d *openAPIDoc) ReadDoc() string {
	d.once.Do(func() {
		swagger, err := servers.GetSwagger()
		if err != nil {
			d.doc = "{}"
			return
		}
		swagger.Servers = nil

		data, err := json.Marshal(swagger)
		if err != nil {
			d.doc = "{}"
			return
		}
		d.doc = string(data)
	})
	return d.doc
}

func init() {
	swag.Register(swag.Name, &openAPIDoc{})
}
