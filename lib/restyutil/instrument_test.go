package restyutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

type memoryOutput struct {
	lock     sync.Mutex
	messages map[string]string
}

func (o *memoryOutput) Write(id string, contents string) {
	o.lock.Lock()
	defer o.lock.Unlock()
	o.messages[id] = contents
}

func TestInstrumentClientRedactsCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "EduSiteCookie", Value: "very-secret-cookie"})
		w.Write([]byte("Login successful!"))
	}))
	defer server.Close()

	out := &memoryOutput{messages: map[string]string{}}
	client := resty.New()
	InstrumentClient(client, out)

	_, err := client.R().
		SetFormData(map[string]string{
			"user":     "alice",
			"script":   "true",
			"password": "hunter2",
		}).
		Post(server.URL + "/login")
	require.NoError(t, err)

	require.Len(t, out.messages, 1)
	message := out.messages["1"]
	require.Contains(t, message, "POST "+server.URL+"/login")
	require.Contains(t, message, "user=alice")
	require.Contains(t, message, "Login successful!")
	require.False(t, strings.Contains(message, "hunter2"))
	require.False(t, strings.Contains(message, "very-secret-cookie"))
}

func TestRedactForm(t *testing.T) {
	require.Equal(t, "script=true&token=%2A%2A%2AREDACTED%2A%2A%2A&user=alice", redactForm("user=alice&script=true&token=abc"))
	require.Equal(t, "user=alice", redactForm("user=alice"))
}

func TestInstrumentClientDumpsGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<table></table>"))
	}))
	defer server.Close()

	out := &memoryOutput{messages: map[string]string{}}
	client := resty.New()
	InstrumentClient(client, out)

	_, err := client.R().
		SetCookie(&http.Cookie{Name: "EduSiteCookie", Value: "session-cookie"}).
		Get(server.URL + "/problems?page=0")
	require.NoError(t, err)

	require.Len(t, out.messages, 1)
	message := out.messages["1"]
	require.Contains(t, message, "GET "+server.URL+"/problems?page=0")
	require.Contains(t, message, "<table></table>")
	require.NotContains(t, message, "session-cookie")
}

func TestFormatRequestBodyWithoutBody(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "http://localhost/problems", nil)
	require.NoError(t, err)
	require.Empty(t, formatRequestBody(req))

	req.GetBody = func() (io.ReadCloser, error) { return nil, nil }
	require.Empty(t, formatRequestBody(req))
}
