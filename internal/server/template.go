package server

import "html/template"

// pageData is the rendering contract: one preformatted row per watchlist
// entry, always present regardless of upstream availability.
type pageData struct {
	UpdatedAt string
	Rows      []pageRow
}

type pageRow struct {
	Name        string
	Symbol      string
	PriceText   string
	ChangeText  string
	ChangeClass string // "up", "down" or "flat"
}

var pageTmpl = template.Must(template.New("status").Parse(`<html>
    <head>
        <title>投资监控仪表盘</title>
        <meta charset="utf-8">
        <style>
            body { font-family: sans-serif; background: #f4f7f6; padding: 20px; }
            .card { background: white; padding: 20px; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); margin-bottom: 10px; }
            .name { font-size: 20px; font-weight: bold; }
            .code { color: #666; }
            .price { font-size: 18px; }
            .up { color: #e74c3c; font-weight: bold; }
            .down { color: #27ae60; font-weight: bold; }
            .flat { color: #999; }
        </style>
    </head>
    <body>
        <h1>📊 投资监控仪表盘</h1>
        <p>更新时间: {{.UpdatedAt}}</p>
        {{range .Rows}}
        <div class="card">
            <span class="name">{{.Name}}</span>
            <span class="code">({{.Symbol}})</span>
            <p class="price">{{.PriceText}} <span class="{{.ChangeClass}}">{{.ChangeText}}</span></p>
        </div>
        {{end}}
    </body>
</html>`))
