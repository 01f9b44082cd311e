package printview

import "html/template"

var pageTemplate = template.Must(template.New("print").Funcs(template.FuncMap{
	"last": func(i int, cells []string) bool { return i == len(cells)-1 },
}).Parse(`<!DOCTYPE html>
<html lang="pt-BR"><head><meta charset="utf-8"><title>{{.Title}} - RotaFácil</title>
<style>
body { font-family: 'Inter', sans-serif; padding: 40px; max-width: 800px; margin: 0 auto; color: #1e293b; }
h1 { font-size: 24px; margin-bottom: 8px; color: #0f172a; }
.header { margin-bottom: 32px; border-bottom: 1px solid #e2e8f0; padding-bottom: 16px; }
.meta { font-size: 14px; color: #64748b; }
table { width: 100%; border-collapse: collapse; margin-top: 10px; margin-bottom: 24px; }
th { text-align: left; padding: 12px 16px; background-color: #f8fafc; font-weight: 600; font-size: 14px; color: #475569; border-bottom: 2px solid #e2e8f0; }
td { padding: 12px 16px; border-bottom: 1px solid #e2e8f0; font-size: 14px; }
tr:last-child td { border-bottom: none; }
.tag { display: inline-block; padding: 2px 8px; border-radius: 4px; font-size: 12px; font-weight: 500; }
.tag-motorista { background: #eff6ff; color: #2563eb; }
.tag-auxiliar { background: #ecfdf5; color: #059669; }
.group-title { font-size: 18px; font-weight: 700; color: #334155; margin-top: 24px; padding-bottom: 4px; border-bottom: 1px solid #cbd5e1; }
.empty { text-align: center; padding: 40px; color: #94a3b8; font-style: italic; }
</style></head><body>
<div class="header"><h1>{{.Title}}</h1><div class="meta">Gerado em: {{.GeneratedAt}}</div></div>
{{- if .Groups}}
{{- range .Groups}}
<div class="group-title">{{.Title}}</div>
<table><thead><tr>{{range $.Columns}}<th>{{.}}</th>{{end}}</tr></thead><tbody>
{{- range .Rows}}{{$row := .}}
<tr>{{range $i, $cell := .Cells}}<td>{{if and $.BoldFirst (eq $i 0)}}<strong>{{$cell}}</strong>{{else if and $row.Tag (last $i $row.Cells)}}<span class="tag {{$row.Tag}}">{{$cell}}</span>{{else}}{{$cell}}{{end}}</td>{{end}}</tr>
{{- end}}
</tbody></table>
{{- end}}
{{- else}}
<div class="empty">{{.Empty}}</div>
{{- end}}
</body></html>
`))
