package game

import "fmt"

func drawPaddle(r Renderer, p *Paddle) {
	r.DrawSprite(Sprite{Kind: SpritePaddle, Index: p.SpriteIndex()}, p.Position.X, p.Position.Y, p.Width, p.Height)
}

func drawBalls(r Renderer, balls []*Ball) {
	for _, b := range balls {
		r.DrawSprite(Sprite{Kind: SpriteBall}, b.Position.X, b.Position.Y, b.Width, b.Height)
	}
}

func drawBricks(r Renderer, bricks []*Brick) {
	for _, b := range bricks {
		if !b.InPlay {
			continue
		}
		r.DrawSprite(Sprite{Kind: SpriteBrick, Index: b.SpriteIndex(), Highlight: b.Flashing()}, b.Position.X, b.Position.Y, b.Width, b.Height)
	}
}

func drawPowerUps(r Renderer, powerUps []*PowerUp, keys []*KeyPowerUp) {
	for _, p := range powerUps {
		r.DrawSprite(Sprite{Kind: SpritePowerUp, Index: p.Tier}, p.Position.X, p.Position.Y, p.Width, p.Height)
	}
	for _, k := range keys {
		r.DrawSprite(Sprite{Kind: SpriteKey}, k.Position.X, k.Position.Y, k.Width, k.Height)
	}
}

// drawBanner prints a title and a prompt in the middle of the playfield.
func drawBanner(r Renderer, ctx *Context, title, prompt string) {
	cx := ctx.Config.CanvasWidth / 2
	cy := ctx.Config.CanvasHeight / 2
	r.DrawText(title, cx, cy-ctx.Config.TileSize*2, AlignCenter)
	if prompt != "" {
		r.DrawText(prompt, cx, cy, AlignCenter)
	}
}

func levelBanner(level int) string {
	return fmt.Sprintf("Level %d", level)
}
