package apidocs

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"html/template"
	"net/http"
	"path"
)

//go:embed openapi.yaml
var specYAML []byte

// Spec 加载并校验内置的 OpenAPI 文档，返回 JSON
func Spec(ctx context.Context) ([]byte, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(specYAML)
	if err != nil {
		return nil, fmt.Errorf("load openapi spec: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi spec: %w", err)
	}

	return doc.MarshalJSON()
}

type page struct {
	SpecURL string
}

// Doc 在 basePath 下提供文档页面 (apidocs) 和文档本体 (apispec.json)
func Doc(basePath string, apiJSON []byte) echo.MiddlewareFunc {
	docPath := path.Join(basePath, "apidocs")
	specPath := path.Join(basePath, "apispec.json")

	tmpl := template.Must(template.New("apidoc").Parse(pageTemplate))
	buf := bytes.NewBuffer(nil)
	_ = tmpl.Execute(buf, &page{SpecURL: specPath})
	uiHTML := buf.String()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch c.Request().URL.Path {
			case docPath:
				return c.HTML(http.StatusOK, uiHTML)
			case specPath:
				return c.JSONBlob(http.StatusOK, apiJSON)
			}

			return next(c)
		}
	}
}

const pageTemplate = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <title>API documentation</title>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1" />
  </head>

  <body>
    <script id="api-reference" data-url="{{ .SpecURL }}"></script>

    <script src="https://cdnjs.cloudflare.com/ajax/libs/scalar-api-reference/1.25.99/standalone.min.js" integrity="sha512-ai3lOYZ5efNXMYwnqhz0mnCaImbqfwLE1VCx9Y9nhB3OJX4/uegjIAoQtJHy3SILHp/gS1OlPCIeNFPZT5i2WQ==" crossorigin="anonymous" referrerpolicy="no-referrer"></script>
  </body>
</html>`
