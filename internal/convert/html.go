package convert

import (
	"context"
	"fmt"
	"strings"

	"wise-migrator/internal/legacy"
	"wise-migrator/internal/wise4"
)

// HTML page constants.
const (
	htmlNodeType  = "HtmlNode"
	classDisplay  = "display"
	classLesson   = "curriculum"
	hintsPath     = "hints/hint"
	jnlpHrefPath  = "parameters/jnlpHref"
	otherDataPath = "otherData"

	// DefaultLaunchBaseURL starts a Pedagogica activity from a saved jar.
	DefaultLaunchBaseURL = "http://wise.berkeley.edu/modules/pedagogica/webstart/startActivity.php"

	launchFrame = "<iframe id='launchFrame' name='launchFrame' style='display:none'></iframe>"
)

// htmlSource produces the markup of an HTML page step.
type htmlSource interface {
	markup(ctx context.Context, step *legacy.Node) (string, error)
}

// htmlPage writes node_N.html with the page markup and node_N.ht pointing at it.
type htmlPage struct {
	class  string
	source htmlSource
}

func (c *htmlPage) Convert(ctx context.Context, step *legacy.Node, counter int) (*Output, error) {
	title, err := stepTitle(step)
	if err != nil {
		return nil, err
	}

	markup, err := c.source.markup(ctx, step)
	if err != nil {
		return nil, err
	}

	htmlName := wise4.StepFileName(counter, "html")
	htName := wise4.StepFileName(counter, "ht")

	payload := wise4.HTMLStep{
		Src:   htmlName,
		Type:  wise4.TypeHTML,
		Hints: hints(step),
	}

	ht, err := wise4.JSONFile(htName, payload)
	if err != nil {
		return nil, err
	}

	return &Output{
		Node:    wise4.NewNode(htmlNodeType, htName, title, c.class),
		Files:   []wise4.File{wise4.RawFile(htmlName, markup), ht},
		Payload: payload,
	}, nil
}

// hints returns the texts of the step's hints, never nil.
func hints(step *legacy.Node) []string {
	out := []string{}
	for _, h := range step.SelectNodes(hintsPath) {
		out = append(out, h.Text())
	}

	return out
}

// paramSource reads markup stored under the step and localizes its images.
type paramSource struct {
	path     string
	rewriter Rewriter
}

func (s paramSource) markup(ctx context.Context, step *legacy.Node) (string, error) {
	text, err := requireText(step, s.path)
	if err != nil {
		return "", err
	}

	if s.rewriter == nil {
		return text, nil
	}

	return s.rewriter.Rewrite(ctx, text), nil
}

// launchButton renders a button opening href in the hidden launch frame.
func launchButton(href string) string {
	return "<input type='button' value='Launch' onclick=\"window.open('" + href +
		"', 'launchFrame'); this.disabled = true;\" />"
}

// jnlpSource renders a page launching the step's Java Web Start file.
type jnlpSource struct{}

func (jnlpSource) markup(_ context.Context, step *legacy.Node) (string, error) {
	href, err := requireText(step, jnlpHrefPath)
	if err != nil {
		return "", err
	}

	return "<html><body>" + launchButton(href) + launchFrame + "</body></html>", nil
}

// concordSource renders a page launching a Pedagogica model that saves its
// state into a jar.
type concordSource struct {
	projectID string
	baseURL   string
}

func (s concordSource) markup(_ context.Context, step *legacy.Node) (string, error) {
	fields := map[string]string{}
	for _, name := range []string{"codebase", "saveJar", "htmlHead", "htmlIntro"} {
		text, err := requireText(step, "parameters/"+name)
		if err != nil {
			return "", err
		}

		fields[name] = text
	}

	baseURL := s.baseURL
	if baseURL == "" {
		baseURL = DefaultLaunchBaseURL
	}

	href := fmt.Sprintf("%s?codebase=%s&saveJar=%s&projectID=%s",
		baseURL, fields["codebase"], fields["saveJar"], s.projectID)

	var sb strings.Builder

	sb.WriteString("<html><head>")
	sb.WriteString("<title>Pedagogica step in project " + s.projectID + "</title>")
	sb.WriteString("<script language='Javascript' type='text/javascript'>")
	sb.WriteString("function launchJnlp(button, jnlpHref) {")
	sb.WriteString("  top.frames['hiddenFrames'].frames['scratchFrame'].location.href = jnlpHref;")
	sb.WriteString("  button.disabled = true;")
	sb.WriteString("}")
	sb.WriteString("</script>")
	sb.WriteString("<STYLE TYPE='text/css'>")
	sb.WriteString(fields["htmlHead"])
	sb.WriteString("</STYLE></head>")
	sb.WriteString("<body>")
	sb.WriteString(fields["htmlIntro"])
	sb.WriteString("<hr>")
	sb.WriteString(launchButton(href))
	sb.WriteString(launchFrame)
	sb.WriteString("</body></html>")

	return sb.String(), nil
}

// bookmarksSource renders a page from the bookmark stored in the step's
// otherData, a PHP serialized map with "html" and "url" entries.
type bookmarksSource struct{}

func (bookmarksSource) markup(_ context.Context, step *legacy.Node) (string, error) {
	data, err := requireText(step, otherDataPath)
	if err != nil {
		return "", err
	}

	entries, err := decodeSerializedMap(data)
	if err != nil {
		return "", fmt.Errorf("decoding bookmark: %w", err)
	}

	url := entries["url"]
	if !strings.HasPrefix(url, "http://") {
		url = "http://" + url
	}

	return "<html><head></head>" + entries["html"] +
		"<br><a href='" + url + "'>" + url + "</a></html>", nil
}
