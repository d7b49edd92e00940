//go:build !http_enabled

package main

func InitializeIdInDbHttp(user string, p *Playthrough) {
}

func UploadDataToDbHttp(user string, p *Playthrough) {
}

func SetUserDataHttp(user string, data string) {
}

func GetUserDataHttp(user string) string {
	return ""
}
