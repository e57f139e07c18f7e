package echoutil

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	kio "github.com/echo-commerce/echo-commerce/pkg/utils/io"
)

// Proxy relays the request held by c to url, verbatim, and relays the
// backend response back: status code, headers and body as they are.
func Proxy(cp *echo.Context, url string) error {
	c := *cp

	req, err := createRequestForBackend(url, cp)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return err
	}

	client := &http.Client{
		// the backend speaks no redirects; pass any through untouched.
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Do(req)
	if err != nil {
		c.String(http.StatusBadGateway, err.Error())
		return err
	}
	defer resp.Body.Close()

	if err := CopyResponse(cp, resp); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return err
	}

	return nil
}

func createRequestForBackend(url string, cp *echo.Context) (*http.Request, error) {
	c := *cp
	src := c.Request()

	req, err := http.NewRequestWithContext(src.Context(), src.Method, url, src.Body)
	if err != nil {
		return nil, err
	}

	CopyHeader(&req.Header, &src.Header, "host")
	if src.Trailer != nil {
		req.Trailer = http.Header{}
		for k, vs := range src.Trailer {
			for _, v := range vs {
				req.Trailer.Add(k, v)
			}
		}
	}

	return req, nil
}

// CopyHeader adds every entry of src into dest, skipping keys listed in
// except (case-insensitive).
func CopyHeader(dest *http.Header, src *http.Header, except ...string) {
	exc := map[string]interface{}{}
	for _, x := range except {
		exc[strings.ToLower(x)] = nil
	}

	for k, vs := range *src {
		if _, ok := exc[strings.ToLower(k)]; ok {
			continue
		}
		for _, v := range vs {
			dest.Add(k, v)
		}
	}
}

// CopyResponse writes resp into the response held by c.
//
// Chunked responses are flushed chunk by chunk, and trailers are copied
// once the body is exhausted.
func CopyResponse(cp *echo.Context, resp *http.Response) error {
	c := *cp
	ctx := c.Request().Context()

	dstResp := c.Response()
	dstHeader := dstResp.Header()
	CopyHeader(&dstHeader, &resp.Header)

	chunked := false
	for _, te := range resp.TransferEncoding {
		dstHeader.Add("Transfer-Encoding", te)
		if strings.ToLower(te) == "chunked" {
			chunked = true
		}
	}
	for trailer := range resp.Trailer {
		dstHeader.Add("Trailer", trailer)
	}

	dstResp.WriteHeader(resp.StatusCode)

	src := kio.NewTriggerReader(resp.Body)
	src.OnEnd(func() {
		trailer := c.Response().Header()
		for k, vs := range resp.Trailer {
			for _, v := range vs {
				trailer.Add(k, v)
			}
		}
	})
	if !chunked {
		_, err := io.Copy(dstResp.Writer, src)
		return err
	}

	buf := make([]byte, 1024*1024)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n, err := src.Read(buf)
		if err != nil {
			dstResp.Flush()
			if errors.Is(err, io.EOF) {
				_, err := dstResp.Write(buf[:n])
				return err
			}
			return err
		}
		if n == 0 {
			continue
		}

		if _, err := dstResp.Write(buf[:n]); err != nil {
			return err
		}
		dstResp.Flush()
	}
}
