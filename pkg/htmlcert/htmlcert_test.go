package htmlcert

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/campushub/eventcore/config"
	"github.com/campushub/eventcore/model"
	"github.com/campushub/eventcore/service/certificate"
)

func newRendererTest(t *testing.T) *Renderer {
	t.Helper()
	dir := t.TempDir()
	r, err := NewRenderer(config.CertificateConfig{
		ArtifactDir: dir,
		BaseURL:     "/certificates",
	})
	assert.Equal(t, nil, err)
	return r
}

func TestRenderer__Render(t *testing.T) {
	r := newRendererTest(t)

	url, err := r.Render(context.Background(), certificate.RenderInput{
		CertificateNumber: "CERT-11-21-100-4fe3a1c8",
		UserName:          "Nguyen Van A",
		EventTitle:        "Tech Conference",
		EventDate:         time.Date(2022, 5, 1, 9, 0, 0, 0, time.UTC),
		IssuedDate:        time.Date(2022, 5, 8, 10, 0, 0, 0, time.UTC),
		Template: model.CertificateTemplate{
			Design:          model.TemplateDesignClassic,
			BackgroundColor: "#102030",
			TextColor:       "#f0f0f0",
		},
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, "/certificates/certificate_CERT-11-21-100-4fe3a1c8.html", url)

	data, err := os.ReadFile(filepath.Join(r.conf.ArtifactDir, "certificate_CERT-11-21-100-4fe3a1c8.html"))
	assert.Equal(t, nil, err)

	content := string(data)
	assert.Equal(t, true, strings.Contains(content, "Nguyen Van A"))
	assert.Equal(t, true, strings.Contains(content, "Tech Conference"))
	assert.Equal(t, true, strings.Contains(content, "CERT-11-21-100-4fe3a1c8"))
	assert.Equal(t, true, strings.Contains(content, "May 1, 2022"))
	assert.Equal(t, true, strings.Contains(content, `class="certificate classic"`))
	assert.Equal(t, true, strings.Contains(content, "#102030"))
}

func TestRenderer__Render__Escapes_HTML(t *testing.T) {
	r := newRendererTest(t)

	_, err := r.Render(context.Background(), certificate.RenderInput{
		CertificateNumber: "CERT-11-21-101-4fe3a1c8",
		UserName:          "<script>alert(1)</script>",
		EventTitle:        "Tech Conference",
		EventDate:         time.Date(2022, 5, 1, 9, 0, 0, 0, time.UTC),
		IssuedDate:        time.Date(2022, 5, 8, 10, 0, 0, 0, time.UTC),
	})
	assert.Equal(t, nil, err)

	data, err := os.ReadFile(filepath.Join(r.conf.ArtifactDir, "certificate_CERT-11-21-101-4fe3a1c8.html"))
	assert.Equal(t, nil, err)
	assert.Equal(t, false, strings.Contains(string(data), "<script>alert(1)</script>"))
}

func TestRenderer__Render__Default_Styles(t *testing.T) {
	r := newRendererTest(t)

	_, err := r.Render(context.Background(), certificate.RenderInput{
		CertificateNumber: "CERT-11-21-102-4fe3a1c8",
		UserName:          "Nguyen Van A",
		EventTitle:        "Tech Conference",
		EventDate:         time.Date(2022, 5, 1, 9, 0, 0, 0, time.UTC),
		IssuedDate:        time.Date(2022, 5, 8, 10, 0, 0, 0, time.UTC),
	})
	assert.Equal(t, nil, err)

	data, err := os.ReadFile(filepath.Join(r.conf.ArtifactDir, "certificate_CERT-11-21-102-4fe3a1c8.html"))
	assert.Equal(t, nil, err)

	content := string(data)
	assert.Equal(t, true, strings.Contains(content, `class="certificate modern"`))
	assert.Equal(t, true, strings.Contains(content, "#1e3a5f"))
}
