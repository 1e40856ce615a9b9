package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/gorilla/schema"
)

// maxBodySize bounds request bodies.
const maxBodySize = 1 << 20

var errBadRequest = errors.New("bad request")

var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.SetAliasTag("json")
	d.IgnoreUnknownKeys(true)
	registerFlexConverters(d)
	return d
}

// decodeBody fills dst from a JSON or form-encoded request body.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %v", errBadRequest, err)
		}
		if err := formDecoder.Decode(dst, r.PostForm); err != nil {
			return fmt.Errorf("%w: %v", errBadRequest, err)
		}
		return nil
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}
