package adcopy

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BuildInstruction converts a brief into the instruction sent to the text
// model. The output is a strict function of its inputs so golden tests can
// pin it down. The market name steers the creative-director framing; the
// brief's language steers the ad copy, while image prompts stay in English
// for the image model.
func BuildInstruction(brief Brief, market string) string {
	market = strings.TrimSpace(market)
	if market == "" {
		market = "Indian"
	}
	lang := cases.Title(language.Und).String(strings.TrimSpace(brief.Language))

	sb := &strings.Builder{}
	fmt.Fprintf(sb, "You are an expert advertising creative director specializing in the %s market. Your task is to create compelling advertisements that resonate with local culture, festivals, and consumer behavior.\n\n", market)
	sb.WriteString("Based on the following information, create advertising content:\n")
	fmt.Fprintf(sb, "- Product/Service: %s\n", brief.ProductDescription)
	fmt.Fprintf(sb, "- Target Audience: %s\n", brief.TargetAudience)
	fmt.Fprintf(sb, "- Special Offer: %s\n", brief.Offer)
	fmt.Fprintf(sb, "- Language: %s\n\n", lang)
	sb.WriteString("Return a single, clean JSON object with exactly two keys:\n\n")
	fmt.Fprintf(sb, "1. \"ad_copy\": An array of %d different, compelling ad copy variations written in %s. Each variation must be an object with \"headline\" and \"body\" keys. Make them culturally relevant, emotionally engaging, and suited to the %s market. Include festival references, family values, and local sentiments where appropriate.\n\n", ExpectedImagePrompts, lang, market)
	fmt.Fprintf(sb, "2. \"image_prompts\": An array of %d highly descriptive, visually rich prompts for image generation, written in English. Each prompt should reflect %s aesthetics and the target audience, with details about lighting, setting, clothing, expressions, and cultural elements that showcase the product and the offer.\n\n", ExpectedImagePrompts, market)
	sb.WriteString("Respond with ONLY the JSON object, no additional text or explanation.")
	return sb.String()
}
