package bot

import "strings"

// Static guidance texts. No network calls behind any of these.

const investmentAdvice = "Cryptocurrency Investment Guidelines:\n\n" +
	"1. Research & Due Diligence:\n" +
	"   - Study the project's whitepaper\n" +
	"   - Analyze the team and backers\n" +
	"   - Review historical performance\n\n" +
	"2. Risk Management:\n" +
	"   - Only invest what you can afford to lose\n" +
	"   - Diversify your portfolio\n" +
	"   - Use stop-loss orders\n\n" +
	"3. Security Best Practices:\n" +
	"   - Use secure wallets\n" +
	"   - Enable 2FA on all accounts\n" +
	"   - Keep private keys safe\n\n" +
	"4. Investment Strategies:\n" +
	"   - Consider dollar-cost averaging\n" +
	"   - Have a long-term perspective\n" +
	"   - Monitor market trends"

const walletInfo = "Cryptocurrency Wallet Guide:\n\n" +
	"1. Hardware Wallets (Most Secure):\n" +
	"   - Ledger Nano X/S\n" +
	"   - Trezor Model T/One\n" +
	"   - KeepKey\n\n" +
	"2. Software Wallets:\n" +
	"   - MetaMask (ETH & ERC-20)\n" +
	"   - Trust Wallet (Multi-coin)\n" +
	"   - Exodus (Desktop)\n\n" +
	"3. Mobile Wallets:\n" +
	"   - Coinbase Wallet\n" +
	"   - Mycelium (Bitcoin)\n" +
	"   - Atomic Wallet\n\n" +
	"Security Tips:\n" +
	"- Always backup your seed phrase\n" +
	"- Use 2FA when available\n" +
	"- Never share private keys"

const walletGuidance = "Popular cryptocurrency wallets:\n\n" +
	"Hardware Wallets:\n" +
	"1. Ledger Nano X/S - Most secure, supports 1500+ coins\n" +
	"2. Trezor Model T/One - High security, user-friendly\n\n" +
	"Software Wallets:\n" +
	"1. MetaMask - Best for Ethereum & ERC-20 tokens\n" +
	"2. Trust Wallet - Mobile wallet, supports multiple chains\n" +
	"3. Exodus - Desktop wallet, built-in exchange\n\n" +
	"Exchange Wallets:\n" +
	"1. Binance\n" +
	"2. Coinbase\n" +
	"Note: Exchange wallets are convenient but less secure than hardware wallets."

const investGuidance = "Cryptocurrency Investment Tips:\n\n" +
	"1. Do Your Research (DYOR)\n" +
	"2. Never invest more than you can afford to lose\n" +
	"3. Diversify your portfolio\n" +
	"4. Use secure wallets\n" +
	"5. Consider dollar-cost averaging\n" +
	"6. Keep track of tax implications\n" +
	"7. Be aware of market volatility\n" +
	"8. Use reputable exchanges\n\n" +
	"Would you like specific information about any of these points?"

const capabilityCatalog = "I can help you with:\n\n" +
	"1. Real-time cryptocurrency prices\n" +
	"2. Market trends and analysis\n" +
	"3. Top performers and market caps\n" +
	"4. Trading volumes\n" +
	"5. Wallet information\n" +
	"6. Investment advice\n\n" +
	"What specific information would you like to know?"

const apology = "I apologize, but I'm having trouble fetching the latest cryptocurrency data. Please try again in a moment."

// generalGuidance answers prompts that matched no category. It keys off a
// wallet or invest mention in the raw prompt and otherwise lists what the
// bot can do.
func generalGuidance(lowerPrompt string) string {
	switch {
	case strings.Contains(lowerPrompt, "wallet"):
		return walletGuidance
	case strings.Contains(lowerPrompt, "invest"):
		return investGuidance
	default:
		return capabilityCatalog
	}
}
