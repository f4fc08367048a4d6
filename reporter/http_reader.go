// Reader is a testing facility to read the output of a http reporter.

package reporter

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

type HttpReader struct {
	serverIP   string // listen ip
	serverPort string // listen port
}

func NewHttpReader(serverIP string, serverPort string) *HttpReader {
	return &HttpReader{
		serverIP:   serverIP,
		serverPort: serverPort,
	}
}

func (hr *HttpReader) baseURL() string {
	return "http://" + hr.serverIP + ":" + hr.serverPort
}

func (hr *HttpReader) GetHello() (string, error) {
	return hr.get(ROUTE_HELLO)
}

func (hr *HttpReader) GetSwapStatus(orderHash string) (string, error) {
	return hr.get(ROUTE_SWAP + "?order_hash=" + orderHash)
}

func (hr *HttpReader) GetSwaps() (string, error) {
	return hr.get(ROUTE_SWAPS)
}

func (hr *HttpReader) GetBalance() (string, error) {
	return hr.get(ROUTE_BALANCE)
}

// PostExecute submits a swap order for execution. body is the JSON
// order document.
func (hr *HttpReader) PostExecute(body []byte) (string, error) {
	resp, err := http.Post(hr.baseURL()+ROUTE_SWAP_EXECUTE, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (hr *HttpReader) PostApprove(orderHash string) (string, error) {
	return hr.post(ROUTE_SWAP_APPROVE, orderHash)
}

func (hr *HttpReader) PostCancel(orderHash string) (string, error) {
	return hr.post(ROUTE_SWAP_CANCEL, orderHash)
}

func (hr *HttpReader) get(route string) (string, error) {
	resp, err := http.Get(hr.baseURL() + route)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	// Read the response body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	// Convert the body to a string
	return string(body), nil
}

func (hr *HttpReader) post(route string, orderHash string) (string, error) {
	payload, err := json.Marshal(map[string]string{"order_hash": orderHash})
	if err != nil {
		return "", err
	}

	resp, err := http.Post(hr.baseURL()+route, "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
