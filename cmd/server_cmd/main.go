package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/crosslock-io/swap-go/cmd"
	"github.com/crosslock-io/swap-go/logconfig"
)

const (
	ENV_CONFIG_FILE_PATH = "RESOLVER_CONFIG"
	ENV_LOG_PRESET       = "RESOLVER_LOG"
)

func main() {
	// Tool to read environment variables
	viper.AutomaticEnv()

	// Set overall log preset: debug, info (default) or production
	logconfig.Apply(viper.GetString(ENV_LOG_PRESET))

	// Accessing an environment variable of configuration file location.
	_config_file := viper.GetString(ENV_CONFIG_FILE_PATH)
	fmt.Printf("Resolver server configuration file = %s\n", _config_file)

	// See if file exists
	if !cmd.FileExists(_config_file) {
		fmt.Printf("Resolver server configuration file not found: %s\n", _config_file)
		return
	}

	// Read from config file.
	success := initializeViper(_config_file)
	if !success {
		return
	}

	fmt.Println("Starting resolver server... press Ctrl+C to kill the server")
	// Start server and block.
	cmd.StartResolverServerAndWait(PrepareResolverServerConfig())
}

func initializeViper(filePath string) bool {
	viper.SetConfigFile(filePath)
	if err := viper.ReadInConfig(); err != nil {
		fmt.Printf("Error reading configuration file, %s", err)
		return false
	}
	return true
}

// PrepareResolverServerConfig reads configuration variables and returns a ResolverServerConfig.
func PrepareResolverServerConfig() *cmd.ResolverServerConfig {
	return &cmd.ResolverServerConfig{
		// eth side
		EthRpcUrl:          viper.GetString("ETH_RPC_URL"),
		EthCoreAccountPriv: viper.GetString("ETH_CORE_ACCOUNT_PRIV"),
		EscrowContractAddr: viper.GetString("ESCROW_CONTRACT_ADDR"),
		UsdcContractAddr:   viper.GetString("USDC_CONTRACT_ADDR"),
		// xrpl side
		XrplWsUrl:       viper.GetString("XRPL_WS_URL"),
		XrplAccountAddr: viper.GetString("XRPL_ACCOUNT_ADDR"),
		XrplAccountSeed: viper.GetString("XRPL_ACCOUNT_SEED"),
		XrplIssuerAddr:  viper.GetString("XRPL_ISSUER_ADDR"),
		XrplCurrency:    viper.GetString("XRPL_CURRENCY"),
		// state side
		DbFilePath: viper.GetString("DB_FILE_PATH"),
		// swap policy
		MinAmount:       viper.GetString("MIN_AMOUNT"),
		MaxAmount:       viper.GetString("MAX_AMOUNT"),
		DemoAutoApprove: viper.GetString("DEMO_AUTO_APPROVE"),
		// Http side
		HttpIp:   viper.GetString("HTTP_IP"),
		HttpPort: viper.GetString("HTTP_PORT"),
	}
}
