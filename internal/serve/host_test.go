package serve

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtnitsch/algosensei/models"
	"github.com/dtnitsch/algosensei/pkg/dispatch"
	"github.com/dtnitsch/algosensei/pkg/extractor"
	"github.com/dtnitsch/algosensei/pkg/nativemsg"
)

const snapshot = `<html><head><title>Two Sum</title></head><body>
<div class="elfjS"><p>Given an array of integers nums</p></div>
<div id="editor"><div><button>Python3</button></div></div>
<div data-track-load="code_editor"><div class="view-lines"><div class="view-line">class Solution:</div><div class="view-line">    pass</div></div></div>
</body></html>`

type wireResponse struct {
	Data        json.RawMessage   `json:"data"`
	HTML        string            `json:"html"`
	Text        string            `json:"text"`
	Title       string            `json:"title"`
	URL         string            `json:"url"`
	Description string            `json:"description"`
	Error       *models.ErrorInfo `json:"error"`
}

func newHost() *Host {
	return NewHost(dispatch.New(extractor.Default(), nil), nil)
}

// frames builds the browser side of the pipe. Frames are written by hand
// since inbound requests may exceed the outbound size limit.
func frames(t *testing.T, msgs ...interface{}) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	for _, m := range msgs {
		raw, ok := m.(string)
		if !ok {
			data, err := json.Marshal(m)
			require.NoError(t, err)
			raw = string(data)
		}
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(len(raw))))
		buf.WriteString(raw)
	}
	return &buf
}

func readAll(t *testing.T, r io.Reader) []wireResponse {
	t.Helper()
	var out []wireResponse
	for {
		var resp wireResponse
		err := nativemsg.ReadJSON(r, &resp)
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
		out = append(out, resp)
	}
}

func TestServe_AnswersEachRequest(t *testing.T) {
	in := frames(t,
		models.Request{Type: models.TypeGetProblem, HTML: snapshot, URL: "https://leetcode.com/problems/two-sum/"},
		models.Request{Type: models.TypeGetCodeComplexity, HTML: snapshot},
		models.Request{Type: models.TypeGetPageInfo, HTML: snapshot, URL: "https://leetcode.com/problems/two-sum/"},
	)
	var out bytes.Buffer

	require.NoError(t, newHost().Serve(context.Background(), in, &out))

	resps := readAll(t, &out)
	require.Len(t, resps, 3)

	var problem []string
	require.NoError(t, json.Unmarshal(resps[0].Data, &problem))
	assert.Equal(t, []string{
		extractor.ProblemHeader,
		"Given an array of integers nums",
		extractor.CodeHeader,
		"class Solution:",
		"    pass",
	}, problem)

	var code models.CodeSnapshot
	require.NoError(t, json.Unmarshal(resps[1].Data, &code))
	assert.Equal(t, models.CodeSnapshot{Code: "class Solution:\n    pass", Language: "Python3"}, code)

	assert.Equal(t, "Two Sum", resps[2].Title)
	assert.Equal(t, "https://leetcode.com/problems/two-sum/", resps[2].URL)
	assert.Equal(t, "", resps[2].Description)
}

func TestServe_ErrorEnvelopesKeepLoopAlive(t *testing.T) {
	in := frames(t,
		"{not json",
		models.Request{Type: "getWeather", HTML: snapshot},
		models.Request{Type: models.TypeGetProblem, HTML: snapshot, URL: "http://[::1"},
		models.Request{Type: models.TypeGetPageText, HTML: snapshot},
	)
	var out bytes.Buffer

	require.NoError(t, newHost().Serve(context.Background(), in, &out))

	resps := readAll(t, &out)
	require.Len(t, resps, 4)
	require.NotNil(t, resps[0].Error)
	assert.Equal(t, "invalid_request", resps[0].Error.Type)
	require.NotNil(t, resps[1].Error)
	assert.Equal(t, "unknown_type", resps[1].Error.Type)
	require.NotNil(t, resps[2].Error)
	assert.Equal(t, "invalid_request", resps[2].Error.Type)
	assert.Nil(t, resps[3].Error)
	assert.Contains(t, resps[3].Text, "Given an array of integers nums")
}

func TestServe_OversizedResponse(t *testing.T) {
	big := "<html><body><p>" + strings.Repeat("x", nativemsg.MaxOutgoing) + "</p></body></html>"
	in := frames(t, models.Request{Type: models.TypeGetPageHTML, HTML: big})
	require.Greater(t, in.Len(), nativemsg.MaxOutgoing)
	var out bytes.Buffer

	require.NoError(t, newHost().Serve(context.Background(), in, &out))

	resps := readAll(t, &out)
	require.Len(t, resps, 1)
	require.NotNil(t, resps[0].Error)
	assert.Equal(t, "response_too_large", resps[0].Error.Type)
}

func TestServe_TruncatedFrame(t *testing.T) {
	var in bytes.Buffer
	require.NoError(t, binary.Write(&in, binary.LittleEndian, uint32(100)))
	in.WriteString(`{"type":`)

	err := newHost().Serve(context.Background(), &in, io.Discard)
	assert.ErrorIs(t, err, nativemsg.ErrShortMessage)
}

func TestServe_EmptyInput(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, newHost().Serve(context.Background(), &bytes.Buffer{}, &out))
	assert.Zero(t, out.Len())
}

func TestServe_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newHost().Serve(ctx, frames(t, models.Request{Type: models.TypeGetProblem}), io.Discard)
	assert.ErrorIs(t, err, context.Canceled)
}
