package htmlcert

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/campushub/eventcore/config"
	"github.com/campushub/eventcore/model"
	"github.com/campushub/eventcore/service/certificate"
)

// Renderer renders certificates as standalone HTML documents stored on
// the local filesystem.
type Renderer struct {
	conf config.CertificateConfig
	tmpl *template.Template
}

var _ certificate.Renderer = &Renderer{}

// NewRenderer ...
func NewRenderer(conf config.CertificateConfig) (*Renderer, error) {
	if err := os.MkdirAll(conf.ArtifactDir, 0o755); err != nil {
		return nil, fmt.Errorf("htmlcert: create artifact dir: %w", err)
	}
	return &Renderer{
		conf: conf,
		tmpl: template.Must(template.New("certificate").Parse(certificateHTML)),
	}, nil
}

type templateData struct {
	CertificateNumber string
	UserName          string
	EventTitle        string
	EventDate         string
	IssuedDate        string
	DesignClass       string
	BackgroundColor   string
	TextColor         string
}

var designClasses = map[model.TemplateDesign]string{
	model.TemplateDesignModern:    "modern",
	model.TemplateDesignClassic:   "classic",
	model.TemplateDesignElegant:   "elegant",
	model.TemplateDesignCorporate: "corporate",
}

const dateLayout = "January 2, 2006"

// Render writes the certificate document and returns its download URL.
// The certificate number is embedded in the file name, a re-render for
// the same certificate overwrites the same file.
func (r *Renderer) Render(_ context.Context, input certificate.RenderInput) (string, error) {
	data := templateData{
		CertificateNumber: input.CertificateNumber,
		UserName:          input.UserName,
		EventTitle:        input.EventTitle,
		EventDate:         input.EventDate.Format(dateLayout),
		IssuedDate:        input.IssuedDate.Format(dateLayout),
		DesignClass:       designClasses[input.Template.Design],
		BackgroundColor:   input.Template.BackgroundColor,
		TextColor:         input.Template.TextColor,
	}
	if data.DesignClass == "" {
		data.DesignClass = "modern"
	}
	if data.BackgroundColor == "" {
		data.BackgroundColor = "#1e3a5f"
	}
	if data.TextColor == "" {
		data.TextColor = "#ffffff"
	}

	fileName := fmt.Sprintf("certificate_%s.html", input.CertificateNumber)
	file, err := os.Create(filepath.Join(r.conf.ArtifactDir, fileName))
	if err != nil {
		return "", fmt.Errorf("htmlcert: create artifact: %w", err)
	}

	if err := r.tmpl.Execute(file, data); err != nil {
		_ = file.Close()
		return "", fmt.Errorf("htmlcert: render: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("htmlcert: close artifact: %w", err)
	}

	return strings.TrimSuffix(r.conf.BaseURL, "/") + "/" + fileName, nil
}

const certificateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Certificate {{.CertificateNumber}}</title>
<style>
body {
	margin: 0;
	font-family: Georgia, 'Times New Roman', serif;
}
.certificate {
	width: 960px;
	margin: 40px auto;
	padding: 60px;
	text-align: center;
	background: {{.BackgroundColor}};
	color: {{.TextColor}};
	border: 12px double {{.TextColor}};
}
.certificate.classic { font-family: 'Times New Roman', serif; }
.certificate.modern { font-family: Helvetica, Arial, sans-serif; }
.certificate.elegant { letter-spacing: 2px; }
.certificate.corporate { border-style: solid; }
.title { font-size: 42px; margin-bottom: 8px; }
.subtitle { font-size: 18px; margin-bottom: 32px; }
.recipient { font-size: 34px; margin: 24px 0; text-decoration: underline; }
.event { font-size: 24px; margin: 16px 0; }
.meta { font-size: 14px; margin-top: 48px; }
</style>
</head>
<body>
<div class="certificate {{.DesignClass}}">
	<div class="title">Certificate of Participation</div>
	<div class="subtitle">This certificate is proudly presented to</div>
	<div class="recipient">{{.UserName}}</div>
	<div class="subtitle">for participating in</div>
	<div class="event">{{.EventTitle}}</div>
	<div class="subtitle">held on {{.EventDate}}</div>
	<div class="meta">
		Certificate No: {{.CertificateNumber}}<br>
		Issued on {{.IssuedDate}}
	</div>
</div>
</body>
</html>
`
