package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"cota/src/directors"
	"cota/src/helpers"
	"cota/src/settings"

	"go.uber.org/zap"
)

// printUsage prints helpful usage information
func printUsage() {
	log.Println("cota - A save-game editor for Companions of the Avatar")
	log.Println("\nUsage:")
	log.Println("  cota [options] -save <file>")
	log.Println("\nOptions:")
	flag.PrintDefaults()

	log.Println("\nExamples:")
	log.Println("  cota -save SotA.sav")
	log.Println("  cota -save SotA.sav -gold 2500")
	log.Println("  cota -save SotA.sav -skill \"Blade Combat\" -level 100")
	log.Println("  cota -save SotA.sav -adv 80 -out SotA_edited.sav")
}

func main() {
	// Get the global settings instance
	args := settings.GetSettings()

	// Define command line flags that map to the Arguments struct
	flag.StringVar(&args.SaveDir, "savedir", args.SaveDir, "Directory the game writes save files to")
	flag.StringVar(&args.LogDir, "logdir", args.LogDir, "Directory to store log files (default: stdout)")
	flag.BoolVar(&args.Verbose, "verbose", args.Verbose, "Enable verbose logging")
	flag.BoolVar(&args.Debug, "debug", args.Debug, "Enable debug mode")
	flag.BoolVar(&args.PrintToScreen, "print", args.PrintToScreen, "Print log messages to the screen")

	savePath := flag.String("save", "", "Path to the save file to edit (required)")
	outPath := flag.String("out", "", "Write the result to this path instead of overwriting the save file")
	gold := flag.Int64("gold", -1, "Set the avatar's gold")
	advLevel := flag.Int("adv", 0, "Set the adventurer level (1-200)")
	prdLevel := flag.Int("prd", 0, "Set the producer level (1-200)")
	skillName := flag.String("skill", "", "Skill to modify, by catalog name")
	skillLevel := flag.Int("level", -1, "Level for -skill (0 removes the skill)")
	listItems := flag.Bool("items", false, "List the avatar's inventory")

	// Parse the command line
	flag.Parse()

	if *savePath == "" && args.SaveDir != "" && flag.NArg() > 0 {
		*savePath = filepath.Join(args.SaveDir, flag.Arg(0))
	}
	if *savePath == "" {
		fmt.Fprintln(os.Stderr, "Error: no save file given")
		printUsage()
		os.Exit(1)
	}

	// Configure the logger outputs
	var outputs []string
	if args.PrintToScreen {
		outputs = append(outputs, "stdout")
	}
	if args.LogDir != "" {
		if err := os.MkdirAll(args.LogDir, 0755); err != nil {
			log.Fatalf("Failed to create log directory: %v", err)
		}
		timestamp := time.Now().Format("2006-01-02_15-04-05")
		outputs = append(outputs, filepath.Join(args.LogDir, timestamp+"_cota.log"))
	}
	if len(outputs) == 0 {
		outputs = []string{"stdout"}
	}

	var config zap.Config
	if args.Debug {
		// Development configuration with more verbose output
		config = zap.NewDevelopmentConfig()
	} else {
		// Production configuration
		config = zap.NewProductionConfig()
		if !args.Verbose {
			config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		}
	}
	config.OutputPaths = outputs

	logger, err := config.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Create a sugared logger for easier API
	sugar := logger.Sugar()

	// Replace standard log with zap
	zap.ReplaceGlobals(logger)

	// Create the editor service
	editor, err := directors.NewEditorService(args, sugar)
	if err != nil {
		sugar.Fatalf("Failed to initialize editor: %v", err)
	}
	directors.InitServiceManager(editor, sugar)

	if !helpers.FileExists(*savePath, sugar) {
		sugar.Fatalf("Save file %s does not exist", *savePath)
	}
	if err := editor.Open(*savePath); err != nil {
		sugar.Fatalf("Failed to open save file: %v", err)
	}
	doc := editor.Document()

	// Numbers are formatted for the system locale.
	printer := helpers.NewNumberPrinter()

	modified := false

	if *gold >= 0 {
		doc.SetGold(*gold)
		modified = true
	}

	if *advLevel > 0 {
		if err := editor.SetAdventurerLevel(*advLevel); err != nil {
			sugar.Fatalf("Failed to set adventurer level: %v", err)
		}
		modified = true
	}

	if *prdLevel > 0 {
		if err := editor.SetProducerLevel(*prdLevel); err != nil {
			sugar.Fatalf("Failed to set producer level: %v", err)
		}
		modified = true
	}

	if *skillName != "" {
		skill, ok := editor.FindSkill(helpers.StripQuotes(*skillName))
		if !ok {
			sugar.Fatalf("Skill %q is not in the catalog", *skillName)
		}
		if *skillLevel >= 0 {
			if err := editor.SetSkillLevel(skill, *skillLevel); err != nil {
				sugar.Fatalf("Failed to set skill level: %v", err)
			}
			modified = true
		} else if level, ok := editor.SkillLevel(skill); ok {
			printer.Printf("%s: level %d\n", skill.Name, level)
		} else {
			printer.Printf("%s: not trained\n", skill.Name)
		}
	}

	if *listItems {
		for _, item := range doc.InventoryItems() {
			if item.Durability != nil {
				printer.Printf("%s x%d (%v/%v)\n", item.Name, item.Count, item.Durability.Minor, item.Durability.Major)
			} else {
				printer.Printf("%s x%d\n", item.Name, item.Count)
			}
		}
	}

	if modified {
		if err := editor.Save(*outPath); err != nil {
			sugar.Fatalf("Failed to store save file: %v", err)
		}
		printer.Printf("Stored %s\n", doc.FilePath())
	}

	// Print a summary of the character.
	if current, ok := doc.Gold(); ok {
		printer.Printf("Gold: %d\n", current)
	}
	if level, ok := doc.AdventurerLevel(); ok {
		printer.Printf("Adventurer level: %d\n", level)
	}
	if level, ok := doc.ProducerLevel(); ok {
		printer.Printf("Producer level: %d\n", level)
	}
}
