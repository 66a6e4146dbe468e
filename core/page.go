package core

import (
	"bytes"
	"compress/gzip"
	"net/http"
	"os"
	"strings"

	"github.com/tdewolff/minify/v2"
	mincss "github.com/tdewolff/minify/v2/css"
	minhtml "github.com/tdewolff/minify/v2/html"
)

// Document is the page served on "/" when no override file is configured.
const Document = `<!DOCTYPE html>
<html>
<head>
    <title>Microservices Architecture</title>
    <style>
        body { font-family: Arial; background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); min-height: 100vh; display: flex; align-items: center; justify-content: center; }
        .container { background: white; padding: 50px; border-radius: 20px; text-align: center; box-shadow: 0 20px 40px rgba(0,0,0,0.1); }
        h1 { color: #333; margin-bottom: 20px; }
        p { color: #666; font-size: 18px; margin-bottom: 15px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>🏗️ Microservices Architecture</h1>
        <p>Professional microservices architecture implementation</p>
        <p>Scalable, distributed system design</p>
        <p>Docker containers, API Gateway, Service Discovery</p>
    </div>
</body>
</html>
`

const reloadScript = `<script>
(function () {
    var ws = new WebSocket("ws://" + location.host + "/__placard_reload");
    ws.onmessage = function (e) { if (e.data === "reload") location.reload(); };
})();
</script>
`

type Page struct {
	env     string
	source  string
	body    []byte
	gzipped []byte
}

var NewPage = func(env, sourceFile string) http.Handler {
	p := &Page{env: env, source: sourceFile}

	if env != "dev" {
		doc := []byte(Document)
		if sourceFile != "" {
			if content, err := os.ReadFile(sourceFile); err == nil {
				doc = content
			}
		}
		p.body = minifyDocument(doc)
		p.gzipped = gzipBytes(p.body)
	}

	return p
}

func (p *Page) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet, http.MethodHead:
	default:
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "405 method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if p.env == "dev" {
		p.serveDev(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if p.gzipped != nil && acceptsGzip(r) {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Set("Vary", "Accept-Encoding")
		if r.Method == http.MethodHead {
			return
		}
		w.Write(p.gzipped)
		return
	}

	if r.Method == http.MethodHead {
		return
	}
	w.Write(p.body)
}

func (p *Page) serveDev(w http.ResponseWriter, r *http.Request) {
	doc := []byte(Document)

	if p.source != "" {
		content, err := os.ReadFile(p.source)
		if err != nil {
			http.Error(w, "Page error: "+err.Error(), http.StatusInternalServerError)
			return
		}
		doc = content
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")

	if r.Method == http.MethodHead {
		return
	}
	w.Write(injectReloadScript(doc))
}

func injectReloadScript(doc []byte) []byte {
	if i := bytes.LastIndex(doc, []byte("</body>")); i != -1 {
		out := make([]byte, 0, len(doc)+len(reloadScript))
		out = append(out, doc[:i]...)
		out = append(out, reloadScript...)
		out = append(out, doc[i:]...)
		return out
	}
	return append(append([]byte{}, doc...), reloadScript...)
}

func minifyDocument(doc []byte) []byte {
	m := minify.New()
	m.AddFunc("text/html", minhtml.Minify)
	m.AddFunc("text/css", mincss.Minify)

	var buf bytes.Buffer
	if err := m.Minify("text/html", &buf, bytes.NewReader(doc)); err != nil {
		return doc
	}
	return buf.Bytes()
}

func gzipBytes(b []byte) []byte {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(b); err != nil {
		return nil
	}
	if err := gz.Close(); err != nil {
		return nil
	}
	return buf.Bytes()
}

func acceptsGzip(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept-Encoding"), "gzip")
}
