// Package notify sends email to job posters when somebody volunteers for their job
package notify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/url"
	"os"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/notify"

	"github.com/umputun/jobboard/app/web/persistence"
)

// Service delivers volunteer notifications to all configured destinations
type Service struct {
	destinations []notify.Notifier
	fromEmail    string
	baseURL      string
	tmpl         *template.Template
}

// Params defines what and when to send
type Params struct {
	Enabled         bool
	BaseURL         string // public url of the site, used for job links
	VolunteeredTmpl string // optional path to custom message template
}

// SendersParams defines how to send
type SendersParams struct {
	SMTPHost     string
	SMTPPort     int
	SMTPTLS      bool
	SMTPUsername string
	SMTPPassword string
	SMTPTimeout  time.Duration
	FromEmail    string
}

const defaultVolunteeredTmpl = `<!DOCTYPE html>
<html>
<head>
	<meta name="viewport" content="width=device-width" />
	<meta http-equiv="Content-Type" content="text/html; charset=UTF-8" />
	<style type="text/css">
		body { font-family: "Arial"; font-size: 1.0em; }
		.bold { color: #1f5f8b; font-weight: 700; }
	</style>
</head>
<body>
	<p>Hi {{.Poster.FirstName}},</p>
	<p><span class="bold">{{.Worker.FullName}}</span> ({{.Worker.Email}}) volunteered for your job
	{{if .Link}}<a href="{{.Link}}">{{.Job.Title}}</a>{{else}}<span class="bold">{{.Job.Title}}</span>{{end}}
	in {{.Job.Location}}.</p>
	<p>Sent at {{.TS.Format "2006-01-02 15:04 MST"}}</p>
</body>
</html>
`

var defaultTmpl = template.Must(template.New("volunteered").Parse(defaultVolunteeredTmpl))

// NewService makes notification service with email destination.
// Returns nil if notifications disabled or smtp is not configured.
func NewService(params Params, senders SendersParams) *Service {
	if !params.Enabled || senders.SMTPHost == "" || senders.FromEmail == "" {
		return nil
	}

	email := notify.NewEmail(notify.SMTPParams{
		Host:        senders.SMTPHost,
		Port:        senders.SMTPPort,
		TLS:         senders.SMTPTLS,
		ContentType: "text/html",
		Charset:     "UTF-8",
		Username:    senders.SMTPUsername,
		Password:    senders.SMTPPassword,
		TimeOut:     senders.SMTPTimeout,
	})
	log.Printf("[INFO] volunteer notifications enabled, smtp %s:%d, from %s", senders.SMTPHost, senders.SMTPPort, senders.FromEmail)

	return &Service{
		destinations: []notify.Notifier{email},
		fromEmail:    senders.FromEmail,
		baseURL:      strings.TrimSuffix(params.BaseURL, "/"),
		tmpl:         loadTemplate(params.VolunteeredTmpl),
	}
}

// Volunteered tells the poster that worker volunteered for the job
func (s *Service) Volunteered(ctx context.Context, job persistence.Job, poster, worker persistence.User) error {
	if poster.Email == "" {
		return fmt.Errorf("poster %d of job %d has no email", poster.ID, job.ID)
	}
	msg, err := s.makeVolunteeredHTML(job, poster, worker)
	if err != nil {
		return err
	}
	subj := fmt.Sprintf("%s volunteered for %q", worker.FullName(), job.Title)
	return s.Send(ctx, []string{poster.Email}, subj, msg)
}

// Send delivers text to recipients by all mailto destinations
func (s *Service) Send(ctx context.Context, to []string, subj, text string) error {
	if len(to) == 0 {
		return errors.New("no recipients")
	}
	dest := fmt.Sprintf("mailto:%s?from=%s&subject=%s", strings.Join(to, ","), s.fromEmail, url.QueryEscape(subj))

	var errs []error
	for _, d := range s.destinations {
		if d.Schema() != "mailto" {
			continue
		}
		log.Printf("[DEBUG] send %q to %v", subj, to)
		if err := d.Send(ctx, dest, text); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Service) makeVolunteeredHTML(job persistence.Job, poster, worker persistence.User) (string, error) {
	data := struct {
		Job    persistence.Job
		Poster persistence.User
		Worker persistence.User
		Link   string
		TS     time.Time
	}{Job: job, Poster: poster, Worker: worker, TS: time.Now()}
	if s.baseURL != "" {
		data.Link = fmt.Sprintf("%s/view/%d", s.baseURL, job.ID)
	}

	tmpl := s.tmpl
	if tmpl == nil {
		tmpl = defaultTmpl
	}
	buf := bytes.Buffer{}
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to apply volunteered template: %w", err)
	}
	return buf.String(), nil
}

// loadTemplate reads custom template file, falls back to the default one if missing or broken
func loadTemplate(path string) *template.Template {
	if path == "" {
		return defaultTmpl
	}
	body, err := os.ReadFile(path) //nolint:gosec // path comes from trusted cli option
	if err != nil {
		log.Printf("[WARN] can't read template %s, using default, %v", path, err)
		return defaultTmpl
	}
	tmpl, err := template.New("volunteered").Parse(string(body))
	if err != nil {
		log.Printf("[WARN] can't parse template %s, using default, %v", path, err)
		return defaultTmpl
	}
	return tmpl
}
