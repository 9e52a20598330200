package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const extensionSpec = `{
  "openapi": "3.0.0",
  "info": {"title": "Graph API extras", "version": "1.0.0"},
  "paths": {
    "/{api_version}/{phone_number_id}/messages": {
      "post": {
        "operationId": "send_message",
        "summary": "Send a message from a business phone number",
        "parameters": [
          {"name": "api_version", "in": "path", "required": true, "schema": {"type": "string"}},
          {"name": "phone_number_id", "in": "path", "required": true, "schema": {"type": "string"}}
        ],
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["to", "type"],
                "properties": {
                  "to": {"type": "string", "description": "Recipient phone number"},
                  "type": {"type": "string"},
                  "text": {"type": "object"}
                }
              }
            }
          }
        }
      }
    },
    "/{api_version}/{media_id}": {
      "get": {
        "operationId": "get_media_url",
        "description": "Retrieve a media URL by media id",
        "parameters": [
          {"name": "api_version", "in": "path", "required": true, "schema": {"type": "string"}},
          {"name": "media_id", "in": "path", "required": true, "schema": {"type": "string"}},
          {"name": "phone_number_id", "in": "query", "schema": {"type": "string"}}
        ]
      }
    }
  }
}`

func TestEndpointsFromOpenAPI(t *testing.T) {
	catalog, err := EndpointsFromOpenAPI([]byte(extensionSpec))
	require.NoError(t, err)
	require.Len(t, catalog, 2)

	send, ok := catalog.Lookup("send_message")
	require.True(t, ok)
	assert.Equal(t, "POST", send.Method)
	assert.Equal(t, "/{api_version}/{phone_number_id}/messages", send.Path)
	assert.Equal(t, "Send a message from a business phone number", send.Description)

	to, ok := send.Param("to")
	require.True(t, ok)
	assert.Equal(t, InBody, to.In)
	assert.True(t, to.Required)
	assert.Equal(t, "Recipient phone number", to.Description)

	text, ok := send.Param("text")
	require.True(t, ok)
	assert.Equal(t, InBody, text.In)
	assert.False(t, text.Required)
	assert.Equal(t, "object", text.Type)

	media, ok := catalog.Lookup("get_media_url")
	require.True(t, ok)
	assert.Equal(t, "GET", media.Method)

	mediaID, ok := media.Param("media_id")
	require.True(t, ok)
	assert.Equal(t, InPath, mediaID.In)
	assert.True(t, mediaID.Required)

	phoneNumberID, ok := media.Param("phone_number_id")
	require.True(t, ok)
	assert.Equal(t, InQuery, phoneNumberID.In)
	assert.False(t, phoneNumberID.Required)
}

func TestEndpointsFromOpenAPI_FallbackName(t *testing.T) {
	spec := `{
  "openapi": "3.0.0",
  "info": {"title": "No operation ids", "version": "1.0.0"},
  "paths": {
    "/ping": {
      "get": {"summary": "Ping"}
    }
  }
}`
	catalog, err := EndpointsFromOpenAPI([]byte(spec))
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, "GET /ping", catalog[0].Name)
	assert.Equal(t, "Ping", catalog[0].Description)
}

func TestEndpointsFromOpenAPI_InvalidDocument(t *testing.T) {
	_, err := EndpointsFromOpenAPI([]byte(`{"openapi": "3.0.0",`))
	assert.Error(t, err)
}

func TestEndpointsFromOpenAPI_MergesWithDefaultCatalog(t *testing.T) {
	extra, err := EndpointsFromOpenAPI([]byte(extensionSpec))
	require.NoError(t, err)

	merged := DefaultCatalog().Merge(extra)
	assert.Len(t, merged, 26)
	_, ok := merged.Lookup("send_message")
	assert.True(t, ok)
	_, ok = merged.Lookup("get_analytics")
	assert.True(t, ok)
}
