//go:build http_enabled

package main

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"
)

const serverUrl = "https://playful-patterns.com"

var httpClient = &http.Client{Timeout: 30 * time.Second}

// makeHttpRequest makes a POST HTTP request to an endpoint and returns the
// body of the response as a string.
func makeHttpRequest(url string, fields map[string]string, files map[string][]byte) string {
	// Create a buffer to write our multipart form data.
	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)
	for k, v := range fields {
		err := writer.WriteField(k, v)
		Check(err)
	}
	for k, v := range files {
		part, err := writer.CreateFormFile(k, k)
		Check(err)
		_, err = part.Write(v)
		Check(err)
	}
	err := writer.Close()
	Check(err)

	request, err := http.NewRequest("POST", url, &requestBody)
	Check(err)
	request.Header.Set("content-type", writer.FormDataContentType())

	response, err := httpClient.Do(request)
	Check(err)
	if err != nil {
		return ""
	}
	defer func(body io.ReadCloser) { Check(body.Close()) }(response.Body)
	if response.StatusCode != 200 {
		Check(fmt.Errorf("http request failed: %d", response.StatusCode))
	}
	data, err := io.ReadAll(response.Body)
	Check(err)
	return string(data)
}

func playthroughFields(user string, p *Playthrough) map[string]string {
	return map[string]string{
		"user":               user,
		"release_version":    strconv.FormatInt(p.ReleaseVersion, 10),
		"simulation_version": strconv.FormatInt(p.SimulationVersion, 10),
		"input_version":      strconv.FormatInt(p.InputVersion, 10),
		"id":                 p.Id.String()}
}

// InitializeIdInDbHttp registers the playthrough on the server before anything
// is recorded, so that even sessions that never complete a celebration show
// up.
func InitializeIdInDbHttp(user string, p *Playthrough) {
	makeHttpRequest(serverUrl+"/submit-playthrough-newyear.php",
		playthroughFields(user, p),
		map[string][]byte{})
}

func UploadDataToDbHttp(user string, p *Playthrough) {
	makeHttpRequest(serverUrl+"/submit-playthrough-newyear.php",
		playthroughFields(user, p),
		map[string][]byte{"playthrough": p.Serialize()})
}

func SetUserDataHttp(user string, data string) {
	makeHttpRequest(serverUrl+"/set-user-data-newyear.php",
		map[string]string{"user": user, "data": data},
		map[string][]byte{})
}

func GetUserDataHttp(user string) string {
	return makeHttpRequest(serverUrl+"/get-user-data-newyear.php",
		map[string]string{"user": user},
		map[string][]byte{})
}
