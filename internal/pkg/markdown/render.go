// Package markdown 将生成文稿使用的受限 Markdown 子集渲染为 HTML。
// 子集：#/##/### 标题、**粗体**、*斜体*、"- " 列表行、空行分隔的段落。
// 渲染保证无损：文本内容逐字保留（HTML 转义后）、顺序不变。
package markdown

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

var (
	boldRe   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe = regexp.MustCompile(`\*(.+?)\*`)
)

// renderInline 转义后处理行内标记，先粗体后斜体
func renderInline(s string) string {
	s = html.EscapeString(s)
	s = boldRe.ReplaceAllString(s, "<strong>$1</strong>")
	s = italicRe.ReplaceAllString(s, "<em>$1</em>")
	return s
}

// RenderFragment 渲染为用于页面预览的 HTML 片段
func RenderFragment(src string) string {
	var b strings.Builder
	var paragraph []string
	inList := false

	flushParagraph := func() {
		if len(paragraph) == 0 {
			return
		}
		b.WriteString("<p>")
		b.WriteString(renderInline(strings.Join(paragraph, " ")))
		b.WriteString("</p>\n")
		paragraph = paragraph[:0]
	}
	closeList := func() {
		if inList {
			b.WriteString("</ul>\n")
			inList = false
		}
	}

	for _, line := range strings.Split(src, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			flushParagraph()
			closeList()
		case strings.HasPrefix(trimmed, "### "):
			flushParagraph()
			closeList()
			fmt.Fprintf(&b, "<h3>%s</h3>\n", renderInline(strings.TrimPrefix(trimmed, "### ")))
		case strings.HasPrefix(trimmed, "## "):
			flushParagraph()
			closeList()
			fmt.Fprintf(&b, "<h2>%s</h2>\n", renderInline(strings.TrimPrefix(trimmed, "## ")))
		case strings.HasPrefix(trimmed, "# "):
			flushParagraph()
			closeList()
			fmt.Fprintf(&b, "<h1>%s</h1>\n", renderInline(strings.TrimPrefix(trimmed, "# ")))
		case strings.HasPrefix(trimmed, "- "):
			flushParagraph()
			if !inList {
				b.WriteString("<ul>\n")
				inList = true
			}
			fmt.Fprintf(&b, "<li>%s</li>\n", renderInline(strings.TrimPrefix(trimmed, "- ")))
		default:
			closeList()
			paragraph = append(paragraph, trimmed)
		}
	}
	flushParagraph()
	closeList()

	return b.String()
}

// printStyle 打印版样式：衬线字体、两端对齐、固定页边距
const printStyle = `body {
  font-family: Georgia, "Times New Roman", serif;
  font-size: 12pt;
  line-height: 1.6;
  color: #111;
  max-width: 50em;
  margin: 0 auto;
  padding: 2.5cm 2cm;
}
p { text-align: justify; }
h1 { font-size: 18pt; text-align: center; }
h2 { font-size: 14pt; }
h3 { font-size: 12pt; }
@page { margin: 2.5cm 2cm; }
@media print { body { padding: 0; } }`

// RenderPrintDocument 渲染为独立的打印版 HTML 文档，
// 浏览器的打印/另存为 PDF 直接可用
func RenderPrintDocument(title, src string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
%s
</style>
</head>
<body>
%s</body>
</html>
`, html.EscapeString(title), printStyle, RenderFragment(src))
}
