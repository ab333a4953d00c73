package prompt

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shouni/gemini-landscape-kit/pkg/domain"
)

const (
	structuralAllowed = "You are allowed to make structural changes. This includes adding or altering hardscapes like pergolas, decks, walls, and gates. When adding hardscapes, consider materials like natural stone, flagstone patios, gravel pathways, wrought iron fences, corten steel edging, or modern concrete pavers to complement the design."

	structuralForbidden = "**ABSOLUTELY NO** structural changes. You are forbidden from adding, removing, or altering buildings, walls, gates, fences, driveways, or other permanent structures. Your redesign must focus exclusively on softscapes (plants, flowers, grass, mulch) and easily movable elements (outdoor furniture, pots, decorative items)."

	objectRemoval = "A critical rule is to handle objects like people, animals, or vehicles. You MUST completely remove any such objects from the property and seamlessly redesign the landscape area they were occupying. The ground underneath (grass, pavement, garden beds, etc.) must be filled in as part of the new design."

	objectImmutable = "You are **STRICTLY FORBIDDEN** from removing or altering any people, animals, or vehicles (cars, trucks, etc.). Treat all of these as permanent objects in the scene that must not be changed. Your design must work around them."

	climateGeneric = "Select plants and materials that are generally appropriate for the visual context of the image."

	climateArid = " For this arid climate, prioritize drought-tolerant plants. Excellent choices include succulents (like Agave, Aloe), cacti (like Prickly Pear), ornamental grasses (like Blue Grama), and hardy shrubs (like Sagebrush)."

	aspectLocked = "You MUST maintain the exact aspect ratio of the original input image. The output image dimensions must correspond to the input image dimensions."

	aspectSoft = "Preserve the original aspect ratio if possible."

	densityMinimal = "CRITICAL DENSITY INSTRUCTION: The user has selected a MINIMAL design. You MUST prioritize open space and simplicity above all else. Use a very limited number of high-impact plants and features. The final design must be clean, uncluttered, and feel spacious."

	densityLush = "CRITICAL DENSITY INSTRUCTION: The user has selected a LUSH design. This is a primary command. You MUST maximize planting to create a dense, layered, and abundant garden. Fill nearly all available softscape areas with a rich variety of plants, textures, and foliage. The goal is an immersive, vibrant landscape with minimal empty or open space."

	densityBalanced = "CRITICAL DENSITY INSTRUCTION: The user has selected a BALANCED design. You MUST create a harmonious mix of planted areas and functional open space (like lawn or patio). Avoid extremes: the design should not feel empty or overly crowded. The composition should be thoughtful and well-proportioned."

	functionalAccess = `- **CRITICAL RULE: Functional Access (No Exceptions):**
  - **Garages & Driveways:** You MUST consistently identify all garage doors. A functional driveway MUST lead directly to each garage door. This driveway must be kept completely clear of any new plants, trees, hardscaping, or other obstructions. The driveway's width MUST be maintained to be at least as wide as the full width of the garage door it serves. Do not place any design elements on the driveway surface. This is a non-negotiable rule.
  - **All Other Doors:** EVERY door (front doors, side doors, patio doors, etc.) MUST be accessible. This means each door must have a clear, direct, and unobstructed pathway leading to it. This pathway must be at least as wide as the door itself and must connect logically to a larger circulation route like the main driveway or a walkway. Do not isolate any doors.`

	catalogSchema = `{
  "plants": [
    {
      "name": "string",
      "species": "string"
    }
  ],
  "features": [
    {
      "name": "string",
      "description": "string"
    }
  ]
}`

	directiveHeader = `
You are an expert AI landscape designer. Your task is to perform an in-place edit of the user's provided image.

**CORE DIRECTIVE: MODIFY, DO NOT REPLACE**
This is the most important rule. You MUST use the user's uploaded image as the base for your work. You are to modify the landscape within that photo according to the instructions below. You are **STRICTLY FORBIDDEN** from generating a completely new image from scratch or ignoring the context of the original photo (e.g., the house, existing structures, background). The output image must clearly be the same property as the input, but with a new landscape design.

**PRIMARY GOAL: IMAGE GENERATION**
Your response MUST begin with the image part. This is a non-negotiable instruction. The first part of your multipart response must be the redesigned image.

**SECONDARY GOAL: JSON DATA**
After the image, you MUST provide a valid JSON object describing the new plants and features. Do not add any introductory text like "Here is the JSON" or conversational filler. The text part should contain ONLY the JSON object, optionally wrapped in a markdown code block.

**INPUT:**
You will receive one image and this set of instructions.
`
)

var aridPattern = regexp.MustCompile(`(?i)arid|desert`)

// ComposeRedesignPrompt は再デザイン用のプロンプトを組み立てます。
// 各節は固定の順序で並び、設定値ごとに差し替えられます。I/O は行いません。
func ComposeRedesignPrompt(cfg domain.RedesignConfiguration) string {
	var b strings.Builder

	b.WriteString(directiveHeader)
	b.WriteString("\n**IMAGE REDESIGN INSTRUCTIONS:**\n")
	fmt.Fprintf(&b, "- **Style:** %s\n", styleClause(cfg.Styles))
	b.WriteString("- **Image Quality:** The output image MUST be of the highest possible quality. It should be sharp, detailed, and photorealistic.\n")
	b.WriteString("- **CRITICAL AESTHETIC RULE: NO TEXTUAL LABELS.** You are absolutely forbidden from adding any text, words, signs, or labels that name the style (e.g., do not write the word 'Modern' or 'Farmhouse' anywhere in the image). The style must be conveyed purely through visual design elements, not through text.\n")
	fmt.Fprintf(&b, "- **Structural Changes:** %s\n", structuralClause(cfg.AllowStructuralChanges))
	fmt.Fprintf(&b, "- **Object Removal:** %s\n", objectClause(cfg.AllowStructuralChanges))
	b.WriteString("- **House:** The house itself must not be changed. This reinforces the core directive.\n")
	fmt.Fprintf(&b, "- **Climate:** %s\n", climateClause(cfg.ClimateZone))
	fmt.Fprintf(&b, "- **Aspect Ratio:** %s\n", aspectClause(cfg.LockAspectRatio))
	fmt.Fprintf(&b, "- **Design Density:** %s\n", densityClause(cfg.Density))
	b.WriteString(functionalAccess)
	b.WriteString("\n\n**JSON SCHEMA (for the text part):**\n")
	b.WriteString("The JSON object must follow this exact schema.\n")
	b.WriteString(catalogSchema)
	b.WriteString("\n- Ensure every single plant in the JSON catalog is suitable for the specified climate zone. This is a non-negotiable rule.\n")
	b.WriteString("- If a category is empty, provide an empty list [].\n")

	return b.String()
}

func styleClause(styles []string) string {
	names := domain.StyleNames(styles)
	switch len(names) {
	case 0:
		// 呼び出し元の保証違反。プロンプト自体は壊さない。
		return "Redesign the landscape in a tasteful style that suits the property."
	case 1:
		return fmt.Sprintf("Redesign the landscape in a '%s' style.", names[0])
	default:
		return fmt.Sprintf("Redesign the landscape in a blended style that combines '%s'. Prioritize a harmonious fusion of these aesthetics.",
			strings.Join(names, "' and '"))
	}
}

func structuralClause(allowed bool) string {
	if allowed {
		return structuralAllowed
	}
	return structuralForbidden
}

// objectClause は structuralClause と同じフラグで選択されます。
func objectClause(allowed bool) string {
	if allowed {
		return objectRemoval
	}
	return objectImmutable
}

func climateClause(zone string) string {
	if zone == "" {
		return climateGeneric
	}
	clause := fmt.Sprintf("All plants, trees, and materials MUST be suitable for the '%s' climate/region.", zone)
	if aridPattern.MatchString(zone) {
		clause += climateArid
	}
	return clause
}

func aspectClause(locked bool) string {
	if locked {
		return aspectLocked
	}
	return aspectSoft
}

func densityClause(d domain.Density) string {
	switch d.Normalize() {
	case domain.DensityMinimal:
		return densityMinimal
	case domain.DensityLush:
		return densityLush
	default:
		return densityBalanced
	}
}
