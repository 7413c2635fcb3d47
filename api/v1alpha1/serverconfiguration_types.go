/*
Copyright 2023 The SFTPGo Operator Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

// The server configuration tree mirrors the sections of the SFTPGo
// configuration file that are meaningful to run inside a cluster. The whole
// tree is passed to the container as flattened environment variables, so
// field names here must match the SFTPGo configuration keys once converted
// to upper snake case.

// HttpdBinding is one listener of the embedded web/management server.
type HttpdBinding struct {
	// Port to listen on. Defaults to 8080.
	// +optional
	Port *int32 `json:"port,omitempty"`

	// +optional
	Address *string `json:"address,omitempty"`

	// +optional
	EnableHTTPS *bool `json:"enableHttps,omitempty"`
}

// HttpdConfiguration configures the management/web interface.
type HttpdConfiguration struct {
	// +optional
	Bindings []HttpdBinding `json:"bindings,omitempty"`
}

// SftpdBinding is one SFTP listener.
type SftpdBinding struct {
	// Port to listen on. Defaults to 2022.
	// +optional
	Port *int32 `json:"port,omitempty"`

	// +optional
	Address *string `json:"address,omitempty"`
}

// SftpdConfiguration configures the SFTP service.
type SftpdConfiguration struct {
	// +optional
	Bindings []SftpdBinding `json:"bindings,omitempty"`

	// +optional
	MaxAuthTries *int32 `json:"maxAuthTries,omitempty"`
}

// FtpdBinding is one FTP control listener.
type FtpdBinding struct {
	// Port to listen on. Defaults to 21.
	// +optional
	Port *int32 `json:"port,omitempty"`

	// +optional
	Address *string `json:"address,omitempty"`
}

// PassivePortRange is the inclusive port range used for passive FTP data
// connections. Every port in the range is exposed on the Service.
type PassivePortRange struct {
	Start int32 `json:"start"`
	End   int32 `json:"end"`
}

// FtpdConfiguration configures the FTP service.
type FtpdConfiguration struct {
	// +optional
	Bindings []FtpdBinding `json:"bindings,omitempty"`

	// +optional
	PassivePortRange *PassivePortRange `json:"passivePortRange,omitempty"`
}

// DataProviderConfiguration selects where SFTPGo keeps its own state.
type DataProviderConfiguration struct {
	// Driver name, for example "sqlite", "postgresql" or "memory".
	// +optional
	Driver *string `json:"driver,omitempty"`

	// +optional
	Name *string `json:"name,omitempty"`

	// +optional
	Host *string `json:"host,omitempty"`

	// +optional
	Port *int32 `json:"port,omitempty"`

	// +optional
	Username *string `json:"username,omitempty"`

	// +optional
	Password *string `json:"password,omitempty"`
}

// CommonConfiguration holds settings shared by all SFTPGo services.
type CommonConfiguration struct {
	// Idle timeout in minutes. 0 disables the idle disconnect.
	// +optional
	IdleTimeout *int32 `json:"idleTimeout,omitempty"`

	// +optional
	MaxTotalConnections *int32 `json:"maxTotalConnections,omitempty"`

	// +optional
	MaxPerHostConnections *int32 `json:"maxPerHostConnections,omitempty"`
}

// ServerConfiguration is the declarative SFTPGo configuration for one server
// instance.
type ServerConfiguration struct {
	// +optional
	Common *CommonConfiguration `json:"common,omitempty"`

	// +optional
	Httpd *HttpdConfiguration `json:"httpd,omitempty"`

	// +optional
	Sftpd *SftpdConfiguration `json:"sftpd,omitempty"`

	// +optional
	Ftpd *FtpdConfiguration `json:"ftpd,omitempty"`

	// +optional
	DataProvider *DataProviderConfiguration `json:"dataProvider,omitempty"`
}
