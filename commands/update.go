package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"

	update "github.com/inconshreveable/go-update"
)

type UpdateCommand struct{}

func (command *UpdateCommand) Execute(args []string) error {
	type GitHubAsset struct {
		Name               string `json:"name"`
		BrowserDownloadUrl string `json:"browser_download_url"`
	}

	type GitHubRelease struct {
		TagName string        `json:"tag_name"`
		Assets  []GitHubAsset `json:"assets"`
	}

	apiResponse, err := http.Get("https://api.github.com/repos/pivotal-cf/password-meter/releases/latest")
	if err != nil {
		return err
	}
	defer apiResponse.Body.Close()

	if apiResponse.StatusCode != http.StatusOK {
		return errors.New("error fetching latest release: " + apiResponse.Status)
	}

	var release GitHubRelease
	if err := json.NewDecoder(apiResponse.Body).Decode(&release); err != nil {
		return err
	}

	if release.TagName == version {
		fmt.Println("Already up to date.")
		return nil
	}

	assetName := fmt.Sprintf("password-meter_%s", runtime.GOOS)

	var downloadUrl string
	for _, asset := range release.Assets {
		if asset.Name == assetName {
			downloadUrl = asset.BrowserDownloadUrl
			break
		}
	}
	if downloadUrl == "" {
		return errors.New("unable to update password-meter for this OS")
	}

	fmt.Println("Downloading new password-meter...")
	downloadResponse, err := http.Get(downloadUrl)
	if err != nil {
		return err
	}
	defer downloadResponse.Body.Close()

	if downloadResponse.StatusCode != http.StatusOK {
		return errors.New("error downloading latest release: " + downloadResponse.Status)
	}

	if err := update.Apply(downloadResponse.Body, update.Options{}); err != nil {
		return err
	}

	fmt.Printf("Upgraded from %s to %s.\n", version, release.TagName)

	return nil
}
