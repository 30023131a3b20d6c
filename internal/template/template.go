package template

import (
	"html/template"
	"io"

	"github.com/shopspring/decimal"
)

var Login *template.Template
var Register *template.Template
var Portfolio *template.Template
var Quote *template.Template
var Quoted *template.Template
var Buy *template.Template
var Bought *template.Template
var Sell *template.Template
var History *template.Template

// usd formats a money value for display. Internal arithmetic stays
// decimal-exact; rounding happens here only.
func usd(value decimal.Decimal) string {
	return "$" + value.StringFixed(2)
}

func parse(files ...string) *template.Template {
	base := template.New("base").Funcs(template.FuncMap{"usd": usd})

	return template.Must(base.ParseFiles(files...))
}

func Init() {
	Login = parse("template/base.tmpl", "template/login.tmpl")
	Register = parse("template/base.tmpl", "template/register.tmpl")
	Portfolio = parse("template/base.tmpl", "template/portfolio.tmpl")
	Quote = parse("template/base.tmpl", "template/quote.tmpl")
	Quoted = parse("template/base.tmpl", "template/quoted.tmpl")
	Buy = parse("template/base.tmpl", "template/buy.tmpl")
	Bought = parse("template/base.tmpl", "template/bought.tmpl")
	Sell = parse("template/base.tmpl", "template/sell.tmpl")
	History = parse("template/base.tmpl", "template/history.tmpl")
}

func Render(tmpl *template.Template, writer io.Writer, data interface{}) {
	tmpl.ExecuteTemplate(writer, "base", data)
}
